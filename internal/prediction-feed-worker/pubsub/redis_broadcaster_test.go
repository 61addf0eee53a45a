package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBroadcaster_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	r := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()

	sub := r.Subscribe(ctx, "predictions_broadcast")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, NewRedisBroadcaster(r).Publish(ctx, "predictions_broadcast", []byte(`{"matchId":"M"}`)))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, `{"matchId":"M"}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}
