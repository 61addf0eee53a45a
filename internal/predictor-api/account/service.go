package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/pkg/contracts/events"
)

// Store é a loja remota com as coleções "users" e "predictions"
type Store interface {
	GetUser(ctx context.Context, id string) (User, error)
	// CreateUser grava apenas se a chave não existir; senão ErrDuplicateNickname
	CreateUser(ctx context.Context, u User) error
	// UpdateWallet sobrescreve carteira e apostas sem checar concorrência
	UpdateWallet(ctx context.Context, id string, wallet int64, bets []Bet) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	// AppendPrediction grava e devolve o registro com o timestamp do servidor
	AppendPrediction(ctx context.Context, p Prediction) (Prediction, error)
	ListPredictions(ctx context.Context) ([]Prediction, error)
}

// Notifier avisa o resto do sistema que o log de palpites mudou
type Notifier interface {
	PublishPredictionRecorded(ctx context.Context, e events.PredictionRecorded) error
}

// Service implementa cadastro, login, carteira e registro de palpites.
// Nenhuma operação faz retry; erros voltam como sentinelas deste pacote.
type Service struct {
	store      Store
	notifier   Notifier
	log        *zap.Logger
	now        func() time.Time
	bcryptCost int
}

type Option func(*Service)

// WithClock troca o relógio (testes)
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithBcryptCost ajusta o custo do bcrypt (testes usam bcrypt.MinCost)
func WithBcryptCost(cost int) Option { return func(s *Service) { s.bcryptCost = cost } }

func NewService(store Store, notifier Notifier, log *zap.Logger, opts ...Option) *Service {
	s := &Service{store: store, notifier: notifier, log: log, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// dummyHash equaliza o custo do login quando o apelido não existe
var dummyHash, _ = HashPassword("not-a-real-password", 0)

// Register cria o usuário com a carteira inicial.
// Apelidos que normalizam para a mesma chave falham com ErrDuplicateNickname.
func (s *Service) Register(ctx context.Context, nickname, password string, initialPoints int64) (User, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || strings.TrimSpace(password) == "" {
		return User{}, fmt.Errorf("%w: nickname and password are required", ErrValidation)
	}
	key := NormalizeNickname(nickname)
	if key == "" {
		return User{}, fmt.Errorf("%w: nickname needs at least one letter or digit", ErrValidation)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           key,
		Nickname:     nickname,
		PasswordHash: hash,
		Wallet:       initialPoints,
		Bets:         []Bet{},
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateNickname) {
			return User{}, ErrDuplicateNickname
		}
		s.log.Error("register user failed", zap.String("user_id", key), zap.Error(err))
		return User{}, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	s.log.Info("user registered", zap.String("user_id", key))
	return u, nil
}

// Login devolve ErrInvalidCredential tanto para apelido inexistente quanto para senha errada
func (s *Service) Login(ctx context.Context, nickname, password string) (User, error) {
	key := NormalizeNickname(strings.TrimSpace(nickname))
	if key == "" || password == "" {
		return User{}, ErrInvalidCredential
	}

	u, err := s.store.GetUser(ctx, key)
	if errors.Is(err, ErrNotFound) {
		_, _ = VerifyPassword(dummyHash, password)
		return User{}, ErrInvalidCredential
	}
	if err != nil {
		s.log.Error("login lookup failed", zap.String("user_id", key), zap.Error(err))
		return User{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}

	ok, legacy := VerifyPassword(u.PasswordHash, password)
	if !ok {
		return User{}, ErrInvalidCredential
	}
	if legacy {
		s.upgradeLegacyHash(ctx, &u, password)
	}
	return u, nil
}

// upgradeLegacyHash regrava em bcrypt; falha aqui não invalida o login
func (s *Service) upgradeLegacyHash(ctx context.Context, u *User, password string) {
	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		s.log.Warn("legacy hash upgrade failed", zap.String("user_id", u.ID), zap.Error(err))
		return
	}
	if err := s.store.UpdatePasswordHash(ctx, u.ID, hash); err != nil {
		s.log.Warn("legacy hash upgrade failed", zap.String("user_id", u.ID), zap.Error(err))
		return
	}
	u.PasswordHash = hash
	s.log.Info("legacy password hash upgraded", zap.String("user_id", u.ID))
}

// GetUser busca direto pela chave
func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	if id == "" {
		return User{}, ErrNotFound
	}
	u, err := s.store.GetUser(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	return u, nil
}

// UpdateWallet sobrescreve carteira e apostas. Último a escrever vence:
// duas confirmações simultâneas do mesmo usuário podem perder uma atualização.
func (s *Service) UpdateWallet(ctx context.Context, id string, wallet int64, bets []Bet) error {
	if bets == nil {
		bets = []Bet{}
	}
	err := s.store.UpdateWallet(ctx, id, wallet, bets)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		s.log.Error("update wallet failed", zap.String("user_id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return nil
}

// RecordPrediction acrescenta um palpite ao feed público.
// O aviso para o feed é best-effort: o registro já está gravado.
func (s *Service) RecordPrediction(ctx context.Context, name, team string, points int64, matchID string) (Prediction, error) {
	if name == "" || team == "" || matchID == "" {
		return Prediction{}, fmt.Errorf("%w: name, team and matchId are required", ErrValidation)
	}

	p := Prediction{
		ID:        uuid.NewString(),
		Name:      name,
		Team:      team,
		Points:    points,
		MatchID:   matchID,
		CreatedAt: s.now().UTC(),
	}
	saved, err := s.store.AppendPrediction(ctx, p)
	if err != nil {
		s.log.Error("record prediction failed", zap.String("match_id", matchID), zap.Error(err))
		return Prediction{}, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	if s.notifier != nil {
		ev := events.PredictionRecorded{
			PredictionID: saved.ID,
			Name:         saved.Name,
			Team:         saved.Team,
			Points:       saved.Points,
			MatchID:      saved.MatchID,
			CreatedAt:    saved.CreatedAt,
		}
		if err := s.notifier.PublishPredictionRecorded(ctx, ev); err != nil {
			s.log.Warn("publish prediction_recorded failed", zap.String("prediction_id", saved.ID), zap.Error(err))
		}
	}
	return saved, nil
}

// ListPredictions devolve o log completo, mais novos primeiro
func (s *Service) ListPredictions(ctx context.Context) ([]Prediction, error) {
	ps, err := s.store.ListPredictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	SortNewestFirst(ps)
	return ps, nil
}
