package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
)

var ErrNoSession = errors.New("no session")

// State é o estado explícito de uma sessão autenticada.
// Nunca é a fonte da verdade: a restauração relê o usuário da loja.
type State struct {
	Token string       `json:"token"`
	User  account.User `json:"user"` // sem hash de senha (json:"-")
}

// NewState abre uma sessão nova para o usuário
func NewState(u account.User) State {
	return State{Token: uuid.NewString(), User: u}
}

// RedisStore persiste cada sessão em session:<token> com TTL
type RedisStore struct {
	R   *redis.Client
	TTL time.Duration
}

func NewRedisStore(r *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{R: r, TTL: ttl}
}

func key(token string) string { return "session:" + token }

// Save sobrescreve o slot e renova o TTL
func (s *RedisStore) Save(ctx context.Context, st State) error {
	if st.Token == "" {
		return fmt.Errorf("save session: empty token")
	}
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.R.Set(ctx, key(st.Token), b, s.TTL).Err()
}

// Load devolve ErrNoSession quando o slot não existe ou expirou
func (s *RedisStore) Load(ctx context.Context, token string) (State, error) {
	if token == "" {
		return State{}, ErrNoSession
	}
	b, err := s.R.Get(ctx, key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrNoSession
	}
	if err != nil {
		return State{}, fmt.Errorf("get session: %w", err)
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, fmt.Errorf("decode session: %w", err)
	}
	return st, nil
}

// Delete limpa o slot; apagar sessão inexistente não é erro
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.R.Del(ctx, key(token)).Err()
}
