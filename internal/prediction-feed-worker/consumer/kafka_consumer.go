package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/prediction-feed-worker/pubsub"
	"github.com/radieske/cricket-predictor/pkg/contracts/events"
)

// MessageReader é satisfeito por *kafka.Reader
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Publisher é satisfeito por *pubsub.RedisBroadcaster
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Processor consome prediction_recorded do Kafka e avisa o feed via Redis Pub/Sub
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Processor struct {
	Log     *zap.Logger
	Reader  MessageReader
	Pub     Publisher
	Channel string

	RetryDelay time.Duration

	OnConsumed  func()       // métricas (counter++)
	OnBroadcast func()       // métricas
	OnError     func(string) // métricas por fase
}

// Run inicia o loop principal de consumo; retorna só quando ctx é cancelado
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			p.fail("read")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.retryDelay()):
			}
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var ev events.PredictionRecorded
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			p.fail("decode")
			continue
		}

		b, _ := json.Marshal(pubsub.Change{MatchID: ev.MatchID, PredictionID: ev.PredictionID})
		pctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		err = p.Pub.Publish(pctx, p.Channel, b)
		cancel()
		if err != nil {
			// sem retry: o próximo palpite gera um novo sinal com o log completo
			p.Log.Warn("feed broadcast publish failed", zap.String("prediction_id", ev.PredictionID), zap.Error(err))
			p.fail("publish")
			continue
		}
		if p.OnBroadcast != nil {
			p.OnBroadcast()
		}
	}
}

func (p *Processor) retryDelay() time.Duration {
	if p.RetryDelay <= 0 {
		return 500 * time.Millisecond
	}
	return p.RetryDelay
}

func (p *Processor) fail(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}
