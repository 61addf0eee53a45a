package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/cricket-predictor/internal/predictor-api/match"
)

// DefaultKey é o slot único do snapshot de partidas
const DefaultKey = "cricket_matches_cache"

// RedisCache guarda o último snapshot bem-sucedido de partidas.
// Sem TTL no Redis: um snapshot velho continua servindo quando a API falha.
type RedisCache struct {
	R   *redis.Client
	Key string
}

func New(r *redis.Client, key string) *RedisCache {
	if key == "" {
		key = DefaultKey
	}
	return &RedisCache{R: r, Key: key}
}

// Load retorna (nil, nil) quando o slot está vazio
func (c *RedisCache) Load(ctx context.Context) (*match.CacheEntry, error) {
	b, err := c.R.Get(ctx, c.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.Key, err)
	}

	var e match.CacheEntry
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Key, err)
	}
	return &e, nil
}

// Store sobrescreve o slot (último a escrever vence)
func (c *RedisCache) Store(ctx context.Context, e match.CacheEntry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, c.Key, b, 0).Err()
}
