package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aviation-institute-api/internal/session"
)

// ----- memory store -----

func TestMemoryStoreRoundtrip(t *testing.T) {
	s := session.NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, "ark")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ark", got.Username)
	assert.True(t, got.ExpiresAt.After(time.Now()))
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := session.NewMemoryStore(time.Hour)

	_, err := s.Get(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreDestroy(t *testing.T) {
	s := session.NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, "ark")
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx, token))
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// destroying again is idempotent
	assert.NoError(t, s.Destroy(ctx, token))
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := session.NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	token, err := s.Create(ctx, "ark")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	s := session.NewMemoryStore(time.Hour)
	ctx := context.Background()

	a, err := s.Create(ctx, "ark")
	require.NoError(t, err)
	b, err := s.Create(ctx, "ark")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// ----- redis store -----

func redisStore(t *testing.T, ttl time.Duration) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return session.NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundtrip(t *testing.T) {
	s, _ := redisStore(t, time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, "ark")
	require.NoError(t, err)

	got, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ark", got.Username)
}

func TestRedisStoreDestroy(t *testing.T) {
	s, _ := redisStore(t, time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, "ark")
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx, token))
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	s, mr := redisStore(t, time.Minute)
	ctx := context.Background()

	token, err := s.Create(ctx, "ark")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreRawTokenNotStored(t *testing.T) {
	s, mr := redisStore(t, time.Hour)

	token, err := s.Create(context.Background(), "ark")
	require.NoError(t, err)

	// only the token hash may appear as a key
	for _, key := range mr.Keys() {
		assert.NotContains(t, key, token)
	}
}

// ----- cookie codec -----

func TestCodecRoundtrip(t *testing.T) {
	c := session.NewCodec("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, c.SetToken(rec, "sometoken"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, session.CookieName, ck.Name)
	assert.True(t, ck.HttpOnly)
	assert.NotEqual(t, "sometoken", ck.Value)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(ck)
	token, ok := c.Token(req)
	require.True(t, ok)
	assert.Equal(t, "sometoken", token)
}

func TestCodecRejectsTamperedValue(t *testing.T) {
	c := session.NewCodec("test-secret", time.Hour, false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged"})
	_, ok := c.Token(req)
	assert.False(t, ok)
}

func TestCodecRejectsForeignSecret(t *testing.T) {
	a := session.NewCodec("secret-a", time.Hour, false)
	b := session.NewCodec("secret-b", time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, a.SetToken(rec, "sometoken"))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	_, ok := b.Token(req)
	assert.False(t, ok)
}

func TestCodecClear(t *testing.T) {
	c := session.NewCodec("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	c.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
