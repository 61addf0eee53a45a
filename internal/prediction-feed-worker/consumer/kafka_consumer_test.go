package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/prediction-feed-worker/pubsub"
	"github.com/radieske/cricket-predictor/pkg/contracts/events"
)

// scriptedReader devolve as respostas em ordem e depois bloqueia até ctx terminar
type scriptedReader struct {
	steps []func() (kafka.Message, error)
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.steps) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	return step()
}

type capturePub struct {
	mu   sync.Mutex
	msgs [][]byte
	err  error
}

func (c *capturePub) Publish(_ context.Context, channel string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, payload)
	return nil
}

func (c *capturePub) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

func msg(t *testing.T, e events.PredictionRecorded) func() (kafka.Message, error) {
	b, err := json.Marshal(e)
	require.NoError(t, err)
	return func() (kafka.Message, error) { return kafka.Message{Value: b}, nil }
}

func TestProcessor_Run(t *testing.T) {
	reader := &scriptedReader{steps: []func() (kafka.Message, error){
		msg(t, events.PredictionRecorded{PredictionID: "p1", MatchID: "M"}),
		func() (kafka.Message, error) { return kafka.Message{Value: []byte("{not json")}, nil },
		func() (kafka.Message, error) { return kafka.Message{}, errors.New("broker gone") },
		msg(t, events.PredictionRecorded{PredictionID: "p2", MatchID: "N"}),
	}}
	pub := &capturePub{}

	var mu sync.Mutex
	var consumed, broadcast int
	var stages []string

	p := &Processor{
		Log:         zap.NewNop(),
		Reader:      reader,
		Pub:         pub,
		Channel:     "predictions_broadcast",
		RetryDelay:  time.Millisecond,
		OnConsumed:  func() { mu.Lock(); consumed++; mu.Unlock() },
		OnBroadcast: func() { mu.Lock(); broadcast++; mu.Unlock() },
		OnError:     func(s string) { mu.Lock(); stages = append(stages, s); mu.Unlock() },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return pub.count() == 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, consumed)
	assert.Equal(t, 2, broadcast)
	assert.Equal(t, []string{"decode", "read"}, stages)

	var first pubsub.Change
	require.NoError(t, json.Unmarshal(pub.msgs[0], &first))
	assert.Equal(t, pubsub.Change{MatchID: "M", PredictionID: "p1"}, first)
}

func TestProcessor_PublishFailureKeepsConsuming(t *testing.T) {
	reader := &scriptedReader{steps: []func() (kafka.Message, error){
		msg(t, events.PredictionRecorded{PredictionID: "p1"}),
	}}
	var failed sync.WaitGroup
	failed.Add(1)
	p := &Processor{
		Log:     zap.NewNop(),
		Reader:  reader,
		Pub:     &capturePub{err: errors.New("redis down")},
		OnError: func(s string) { assert.Equal(t, "publish", s); failed.Done() },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	failed.Wait()
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
