package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"accountservice/internal/ctxdata"
	"accountservice/internal/errdefs"
	"accountservice/internal/logging"
	"accountservice/internal/model"
)

type AccountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
}

type IdentityCache interface {
	Get(ctx context.Context, accountId uuid.UUID) (*model.Identity, bool)
	Set(ctx context.Context, identity *model.Identity)
}

// NewIdentityMiddleware hydrates the caller tuple from the X-User-Id /
// X-User-Role headers the gateway sets after authentication. The approval and
// activity flags always come from this service's own accounts table, not from
// the headers.
func NewIdentityMiddleware(accounts AccountGetter, cache IdentityCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			rawId := r.Header.Get("X-User-Id")
			if rawId == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			userId, err := uuid.Parse(rawId)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			identity, ok := cache.Get(ctx, userId)
			if !ok {
				account, err := accounts.GetAccount(ctx, userId)
				if err != nil {
					if errors.Is(err, errdefs.ErrNotFound) {
						w.WriteHeader(http.StatusUnauthorized)
						return
					}
					if logger, lok := logging.GetFromContext(ctx); lok {
						logger.Error(ctx, "failed to resolve identity", zap.Error(err))
					}
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				identity = &model.Identity{
					Id:         account.Id,
					Role:       account.Role,
					IsApproved: account.IsApproved,
					Active:     account.Active,
				}
				cache.Set(ctx, identity)
			}

			// The gateway's role claim must agree with the stored account.
			if headerRole := r.Header.Get("X-User-Role"); headerRole != "" && headerRole != identity.Role.String() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			r = r.WithContext(ctxdata.WithIdentity(ctx, identity))
			next.ServeHTTP(w, r)
		})
	}
}
