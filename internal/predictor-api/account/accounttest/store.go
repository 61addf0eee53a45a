// Package accounttest traz uma loja em memória para testes dos pacotes que dependem de account.
package accounttest

import (
	"context"
	"sync"
	"time"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
)

// Store implementa account.Store em memória. Os campos Err* forçam falhas.
type Store struct {
	mu          sync.Mutex
	users       map[string]account.User
	predictions []account.Prediction

	ErrGet        error
	ErrCreate     error
	ErrWallet     error
	ErrPassword   error
	ErrAppend     error
	ErrList       error
	WalletUpdates int
	Now           func() time.Time
}

func NewStore() *Store {
	return &Store{users: map[string]account.User{}, Now: time.Now}
}

// Put grava o usuário direto, sem as regras de cadastro
func (s *Store) Put(u account.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) GetUser(_ context.Context, id string) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ErrGet != nil {
		return account.User{}, s.ErrGet
	}
	u, ok := s.users[id]
	if !ok {
		return account.User{}, account.ErrNotFound
	}
	u.Bets = append([]account.Bet{}, u.Bets...)
	return u, nil
}

func (s *Store) CreateUser(_ context.Context, u account.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ErrCreate != nil {
		return s.ErrCreate
	}
	if _, ok := s.users[u.ID]; ok {
		return account.ErrDuplicateNickname
	}
	s.users[u.ID] = u
	return nil
}

func (s *Store) UpdateWallet(_ context.Context, id string, wallet int64, bets []account.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ErrWallet != nil {
		return s.ErrWallet
	}
	u, ok := s.users[id]
	if !ok {
		return account.ErrNotFound
	}
	u.Wallet = wallet
	u.Bets = append([]account.Bet{}, bets...)
	s.users[id] = u
	s.WalletUpdates++
	return nil
}

func (s *Store) UpdatePasswordHash(_ context.Context, id, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ErrPassword != nil {
		return s.ErrPassword
	}
	u, ok := s.users[id]
	if !ok {
		return account.ErrNotFound
	}
	u.PasswordHash = hash
	s.users[id] = u
	return nil
}

func (s *Store) AppendPrediction(_ context.Context, p account.Prediction) (account.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ErrAppend != nil {
		return account.Prediction{}, s.ErrAppend
	}
	p.Timestamp = s.Now().UTC()
	s.predictions = append(s.predictions, p)
	return p, nil
}

func (s *Store) ListPredictions(_ context.Context) ([]account.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ErrList != nil {
		return nil, s.ErrList
	}
	return append([]account.Prediction{}, s.predictions...), nil
}

// Predictions devolve uma cópia do log gravado
func (s *Store) Predictions() []account.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]account.Prediction{}, s.predictions...)
}

// SetErrWallet troca a falha de UpdateWallet com o lock tomado
func (s *Store) SetErrWallet(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ErrWallet = err
}

// SetErrList troca a falha de ListPredictions com o lock tomado
func (s *Store) SetErrList(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ErrList = err
}
