package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"accountservice/internal/model"
)

// IdentityCache keeps resolved identity tuples in Redis so the middleware does
// not hit the accounts table on every request. Lifecycle transitions
// invalidate the affected entry.
type IdentityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdentityCache(rdb *redis.Client, ttl time.Duration) *IdentityCache {
	return &IdentityCache{rdb: rdb, ttl: ttl}
}

func identityKey(accountId uuid.UUID) string {
	return "identity:" + accountId.String()
}

func (c *IdentityCache) Get(ctx context.Context, accountId uuid.UUID) (*model.Identity, bool) {
	val, err := c.rdb.Get(ctx, identityKey(accountId)).Bytes()
	if err != nil {
		return nil, false
	}
	var identity model.Identity
	if err := json.Unmarshal(val, &identity); err != nil {
		return nil, false
	}
	return &identity, true
}

func (c *IdentityCache) Set(ctx context.Context, identity *model.Identity) {
	data, err := json.Marshal(identity)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, identityKey(identity.Id), data, c.ttl)
}

func (c *IdentityCache) Invalidate(ctx context.Context, accountId uuid.UUID) {
	c.rdb.Del(ctx, identityKey(accountId))
}
