package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/cricket-predictor/pkg/contracts/events"
)

type captureWriter struct {
	msgs []kafka.Message
	err  error
}

func (c *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	c.msgs = append(c.msgs, msgs...)
	return c.err
}

func TestPublishPredictionRecorded(t *testing.T) {
	w := &captureWriter{}
	p := NewKafkaPublisher(w)
	p.Now = func() time.Time { return time.UnixMilli(1770465600000) }

	err := p.PublishPredictionRecorded(context.Background(), events.PredictionRecorded{
		PredictionID: "p1", Name: "Virat", Team: "India", Points: 50, MatchID: "M",
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "M", string(w.msgs[0].Key))

	var got events.PredictionRecorded
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "p1", got.PredictionID)
	assert.Equal(t, int64(1770465600000), got.TsUnixMs)
}

func TestPublishPredictionRecorded_WriterError(t *testing.T) {
	p := NewKafkaPublisher(&captureWriter{err: errors.New("leader not available")})
	assert.Error(t, p.PublishPredictionRecorded(context.Background(), events.PredictionRecorded{MatchID: "M"}))
}
