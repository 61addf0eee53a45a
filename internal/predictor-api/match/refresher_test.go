package match

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scriptedFetcher struct {
	lists [][]Match
	calls int
}

func (s *scriptedFetcher) Upcoming(context.Context) []Match {
	i := s.calls
	s.calls++
	if i >= len(s.lists) {
		return s.lists[len(s.lists)-1]
	}
	return s.lists[i]
}

func TestRefresher_KeepsLastNonEmptySnapshot(t *testing.T) {
	first := []Match{{ID: "a"}, {ID: "b"}}
	f := &scriptedFetcher{lists: [][]Match{first, nil}}
	r := NewRefresher(f, time.Minute, zap.NewNop())

	assert.Nil(t, r.Current())
	assert.Equal(t, first, r.Refresh(context.Background()))
	assert.Equal(t, first, r.Refresh(context.Background()))
	assert.Equal(t, first, r.Current())

	m, ok := r.Find("b")
	require.True(t, ok)
	assert.Equal(t, "b", m.ID)
	_, ok = r.Find("zz")
	assert.False(t, ok)
}

func TestRefresher_RunLoadsImmediatelyAndStops(t *testing.T) {
	f := &scriptedFetcher{lists: [][]Match{{{ID: "a"}}}}
	r := NewRefresher(f, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return len(r.Current()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop")
	}
}
