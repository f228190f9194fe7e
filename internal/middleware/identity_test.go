package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountservice/internal/ctxdata"
	"accountservice/internal/errdefs"
	"accountservice/internal/model"
)

type stubAccounts struct {
	account *model.Account
	err     error
	calls   int
}

func (s *stubAccounts) GetAccount(_ context.Context, _ uuid.UUID) (*model.Account, error) {
	s.calls++
	return s.account, s.err
}

type memoryCache struct {
	entries map[uuid.UUID]*model.Identity
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[uuid.UUID]*model.Identity{}}
}

func (c *memoryCache) Get(_ context.Context, accountId uuid.UUID) (*model.Identity, bool) {
	identity, ok := c.entries[accountId]
	return identity, ok
}

func (c *memoryCache) Set(_ context.Context, identity *model.Identity) {
	c.entries[identity.Id] = identity
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, *model.Identity) {
	t.Helper()
	var got *model.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ctxdata.GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	w := httptest.NewRecorder()
	mw(next).ServeHTTP(w, req)
	return w, got
}

func TestIdentityMiddleware(t *testing.T) {
	accountID := uuid.New()

	t.Run("HydratesFromRepository", func(t *testing.T) {
		accounts := &stubAccounts{account: &model.Account{
			Id:         accountID,
			Role:       model.RoleInstructor,
			IsApproved: true,
			Active:     true,
		}}
		cache := newMemoryCache()
		mw := NewIdentityMiddleware(accounts, cache)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Id", accountID.String())
		req.Header.Set("X-User-Role", "instructor")

		w, identity := serve(t, mw, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, identity)
		assert.Equal(t, accountID, identity.Id)
		assert.Equal(t, model.RoleInstructor, identity.Role)
		assert.True(t, identity.IsApproved)

		// Hydration also populates the cache.
		_, cached := cache.Get(context.Background(), accountID)
		assert.True(t, cached)
	})

	t.Run("ServesFromCache", func(t *testing.T) {
		accounts := &stubAccounts{err: errdefs.ErrNotFound}
		cache := newMemoryCache()
		cache.Set(context.Background(), &model.Identity{Id: accountID, Role: model.RoleStudent})
		mw := NewIdentityMiddleware(accounts, cache)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Id", accountID.String())

		w, identity := serve(t, mw, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, accountID, identity.Id)
		assert.Zero(t, accounts.calls)
	})

	t.Run("Unauthorized_MissingHeader", func(t *testing.T) {
		mw := NewIdentityMiddleware(&stubAccounts{}, newMemoryCache())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w, _ := serve(t, mw, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unauthorized_BadUUID", func(t *testing.T) {
		mw := NewIdentityMiddleware(&stubAccounts{}, newMemoryCache())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Id", "not-a-uuid")
		w, _ := serve(t, mw, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unauthorized_UnknownAccount", func(t *testing.T) {
		mw := NewIdentityMiddleware(&stubAccounts{err: errdefs.ErrNotFound}, newMemoryCache())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Id", uuid.NewString())
		w, _ := serve(t, mw, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unauthorized_RoleMismatch", func(t *testing.T) {
		accounts := &stubAccounts{account: &model.Account{
			Id:   accountID,
			Role: model.RoleStudent,
		}}
		mw := NewIdentityMiddleware(accounts, newMemoryCache())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Id", accountID.String())
		req.Header.Set("X-User-Role", "admin")
		w, _ := serve(t, mw, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
