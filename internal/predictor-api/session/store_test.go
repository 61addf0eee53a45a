package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
)

func newStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = r.Close() })
	return NewRedisStore(r, time.Hour), mr
}

func TestRedisStore_SaveLoadDelete(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	st := NewState(account.User{ID: "virat", Nickname: "Virat", PasswordHash: "$2a$secret", Wallet: 100})
	require.NotEmpty(t, st.Token)
	require.NoError(t, s.Save(ctx, st))

	raw, err := mr.Get("session:" + st.Token)
	require.NoError(t, err)
	assert.False(t, strings.Contains(raw, "secret"), "hash must not be persisted")
	assert.Equal(t, time.Hour, mr.TTL("session:"+st.Token))

	got, err := s.Load(ctx, st.Token)
	require.NoError(t, err)
	assert.Equal(t, "virat", got.User.ID)
	assert.Equal(t, int64(100), got.User.Wallet)
	assert.Empty(t, got.User.PasswordHash)

	require.NoError(t, s.Delete(ctx, st.Token))
	_, err = s.Load(ctx, st.Token)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.NoError(t, s.Delete(ctx, st.Token))
}

func TestRedisStore_Expired(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()
	st := NewState(account.User{ID: "a"})
	require.NoError(t, s.Save(ctx, st))

	mr.FastForward(2 * time.Hour)

	_, err := s.Load(ctx, st.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStore_EmptyToken(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Error(t, s.Save(context.Background(), State{}))
}

func TestNewState_UniqueTokens(t *testing.T) {
	a := NewState(account.User{ID: "x"})
	b := NewState(account.User{ID: "x"})
	assert.NotEqual(t, a.Token, b.Token)
}
