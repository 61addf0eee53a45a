package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/cricket-predictor/pkg/contracts/events"
)

// MessageWriter é satisfeito por *kafka.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher publica prediction_recorded; a chave é a partida para manter a ordem por partida
type KafkaPublisher struct {
	Writer MessageWriter
	Now    func() time.Time
}

func NewKafkaPublisher(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: w, Now: time.Now}
}

func (p *KafkaPublisher) PublishPredictionRecorded(ctx context.Context, e events.PredictionRecorded) error {
	e.TsUnixMs = p.Now().UnixMilli()
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{Key: []byte(e.MatchID), Value: b})
}
