package ctxdata

import (
	"context"

	"accountservice/internal/model"
)

type traceIDKey struct{}
type identityKey struct{}

var (
	traceIDKeyInstance  = traceIDKey{}
	identityKeyInstance = identityKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

// WithIdentity stores the resolved caller across the transport boundary only.
// Handlers pull it out and pass it to the service layer explicitly.
func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, identityKeyInstance, identity)
}

func GetIdentity(ctx context.Context) (*model.Identity, bool) {
	v := ctx.Value(identityKeyInstance)
	identity, ok := v.(*model.Identity)
	return identity, ok
}
