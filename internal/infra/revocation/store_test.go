package revocation

import (
	"context"
	"sync"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"
	mockRepo "gatekeeper/internal/mocks/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRevokedTokenRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.RevokedToken
}

func newMemoryRevokedTokenRepo() *memoryRevokedTokenRepo {
	return &memoryRevokedTokenRepo{entries: make(map[string]*entity.RevokedToken)}
}

func (r *memoryRevokedTokenRepo) Save(_ context.Context, token *entity.RevokedToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[token.TokenHash]; !ok {
		r.entries[token.TokenHash] = token
	}

	return nil
}

func (r *memoryRevokedTokenRepo) Exists(_ context.Context, tokenHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[tokenHash]

	return ok, nil
}

func (r *memoryRevokedTokenRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for hash, token := range r.entries {
		if token.ExpiresAt.Before(before) {
			delete(r.entries, hash)
			n++
		}
	}

	return n, nil
}

func TestHashToken(t *testing.T) {
	hash := HashToken("abc")

	assert.Len(t, hash, 64)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hash)
	assert.NotEqual(t, hash, HashToken("abd"))
}

func TestPostgresStore_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryRevokedTokenRepo()
	store := NewPostgresStore(repo, func() time.Time { return now })

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "token-a", now.Add(time.Minute)))
	require.NoError(t, store.Revoke(ctx, "token-a", now.Add(time.Minute)))

	revoked, err = store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, raw := repo.entries["token-a"]
	assert.False(t, raw, "raw token must not be stored")
}

func TestPostgresStore_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryRevokedTokenRepo()
	store := NewPostgresStore(repo, func() time.Time { return now })

	require.NoError(t, store.Revoke(ctx, "expired", now.Add(-time.Minute)))
	require.NoError(t, store.Revoke(ctx, "live", now.Add(time.Hour)))

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	revoked, err := store.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestPostgresStore_RejectsEmptyToken(t *testing.T) {
	store := NewPostgresStore(newMemoryRevokedTokenRepo(), time.Now)

	assert.Error(t, store.Revoke(context.Background(), "", time.Now()))
}

func TestPostgresStore_RepositoryErrors(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dbErr := errors.New("connection reset")
	ctx := context.Background()

	repo := mockRepo.NewMockRevokedTokenRepository(t)
	store := NewPostgresStore(repo, func() time.Time { return now })

	repo.EXPECT().
		Save(ctx, &entity.RevokedToken{TokenHash: HashToken("tok"), ExpiresAt: now.Add(time.Hour), RevokedAt: now}).
		Return(dbErr)
	repo.EXPECT().Exists(ctx, HashToken("tok")).Return(false, dbErr)
	repo.EXPECT().DeleteExpired(ctx, now).Return(int64(0), dbErr)

	assert.ErrorIs(t, store.Revoke(ctx, "tok", now.Add(time.Hour)), dbErr)

	revoked, err := store.IsRevoked(ctx, "tok")
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, revoked)

	_, err = store.PurgeExpired(ctx)
	assert.ErrorIs(t, err, dbErr)
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisStore_RevokeSetsTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	now := time.Now()
	store := NewRedisStore(client, "revoked:", func() time.Time { return now })

	require.NoError(t, store.Revoke(ctx, "token-a", now.Add(10*time.Minute)))

	key := "revoked:" + HashToken("token-a")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 10*time.Minute, mr.TTL(key))

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStore_EntryExpiresWithToken(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	now := time.Now()
	store := NewRedisStore(client, "revoked:", func() time.Time { return now })

	require.NoError(t, store.Revoke(ctx, "token-a", now.Add(time.Minute)))
	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)
}

func TestRedisStore_AlreadyExpiredTokenGetsMinimumTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	now := time.Now()
	store := NewRedisStore(client, "revoked:", func() time.Time { return now })

	require.NoError(t, store.Revoke(ctx, "token-a", now.Add(-time.Hour)))

	assert.Equal(t, time.Second, mr.TTL("revoked:"+HashToken("token-a")))
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, "revoked:", time.Now)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "token-a")
	assert.Error(t, err)
	assert.Error(t, store.Revoke(context.Background(), "token-a", time.Now().Add(time.Minute)))
}
