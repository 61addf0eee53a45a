package betting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
	"github.com/radieske/cricket-predictor/internal/predictor-api/match"
)

var (
	ErrBettingClosed      = errors.New("betting window is closed")
	ErrUnknownTeam        = errors.New("team does not play this match")
	ErrInvalidPoints      = errors.New("points must be positive")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrAlreadyBet         = errors.New("already bet on this match")
)

// Accounts é o subconjunto de account.Service usado na confirmação
type Accounts interface {
	RecordPrediction(ctx context.Context, name, team string, points int64, matchID string) (account.Prediction, error)
	UpdateWallet(ctx context.Context, id string, wallet int64, bets []account.Bet) error
}

// Service confirma apostas: grava o palpite no feed e depois debita a carteira
type Service struct {
	Accounts Accounts
	Now      func() time.Time
	Log      *zap.Logger

	OnConfirmed func(matchID string, points int64) // métricas
	OnRejected  func(reason error)
}

func NewService(accounts Accounts, log *zap.Logger) *Service {
	return &Service{Accounts: accounts, Now: time.Now, Log: log}
}

// ConfirmBet devolve o usuário atualizado. Em qualquer falha devolve o usuário
// recebido sem alterações. Palpite e carteira não são gravados atomicamente:
// se o débito falhar, o palpite já está no feed.
func (s *Service) ConfirmBet(ctx context.Context, u account.User, m match.Match, team string, points int64) (account.User, error) {
	if err := s.check(u, m, team, points); err != nil {
		if s.OnRejected != nil {
			s.OnRejected(err)
		}
		return u, err
	}

	p, err := s.Accounts.RecordPrediction(ctx, u.Nickname, team, points, m.ID)
	if err != nil {
		return u, fmt.Errorf("record prediction: %w", err)
	}

	bets := make([]account.Bet, 0, len(u.Bets)+1)
	bets = append(bets, u.Bets...)
	bets = append(bets, account.Bet{MatchID: m.ID, Team: team, Points: points})
	wallet := u.Wallet - points

	if err := s.Accounts.UpdateWallet(ctx, u.ID, wallet, bets); err != nil {
		s.Log.Error("wallet update failed after prediction recorded",
			zap.String("user_id", u.ID),
			zap.String("match_id", m.ID),
			zap.String("prediction_id", p.ID),
			zap.Error(err),
		)
		return u, fmt.Errorf("update wallet: %w", err)
	}

	out := u
	out.Wallet = wallet
	out.Bets = bets

	s.Log.Info("bet confirmed",
		zap.String("user_id", u.ID),
		zap.String("match_id", m.ID),
		zap.String("team", team),
		zap.Int64("points", points),
	)
	if s.OnConfirmed != nil {
		s.OnConfirmed(m.ID, points)
	}
	return out, nil
}

func (s *Service) check(u account.User, m match.Match, team string, points int64) error {
	if !match.BettingOpen(m, s.now()) {
		return ErrBettingClosed
	}
	if !m.HasTeam(team) {
		return ErrUnknownTeam
	}
	if points <= 0 {
		return ErrInvalidPoints
	}
	if points > u.Wallet {
		return ErrInsufficientPoints
	}
	if _, ok := u.BetOn(m.ID); ok {
		return ErrAlreadyBet
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
