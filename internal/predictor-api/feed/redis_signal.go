package feed

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSignal transforma mensagens do canal Pub/Sub em sinais de mudança.
// O conteúdo da mensagem é ignorado; o assinante sempre relê o log completo.
type RedisSignal struct {
	R       *redis.Client
	Channel string
}

func NewRedisSignal(r *redis.Client, channel string) *RedisSignal {
	return &RedisSignal{R: r, Channel: channel}
}

// Changes só retorna depois que a inscrição foi confirmada pelo Redis,
// então nenhuma publicação posterior é perdida
func (s *RedisSignal) Changes(ctx context.Context) (<-chan struct{}, error) {
	sub := s.R.Subscribe(ctx, s.Channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", s.Channel, err)
	}

	in := sub.Channel()
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-in:
				if !ok {
					return
				}
				// rajadas viram um único recarregamento
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
