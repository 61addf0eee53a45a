package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
)

// Postgres implementa account.Store sobre as tabelas users e predictions
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// GetUser lê o usuário pela chave normalizada
func (p *Postgres) GetUser(ctx context.Context, id string) (account.User, error) {
	var (
		u    account.User
		bets []byte
	)
	err := p.db.QueryRowContext(ctx, `
		SELECT id, nickname, password_hash, wallet, bets, created_at
		FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Nickname, &u.PasswordHash, &u.Wallet, &bets, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return account.User{}, account.ErrNotFound
	}
	if err != nil {
		return account.User{}, err
	}
	if err := json.Unmarshal(bets, &u.Bets); err != nil {
		return account.User{}, fmt.Errorf("decode bets of %s: %w", id, err)
	}
	if u.Bets == nil {
		u.Bets = []account.Bet{}
	}
	return u, nil
}

// CreateUser insere só se a chave estiver livre; o primeiro registro nunca é sobrescrito
func (p *Postgres) CreateUser(ctx context.Context, u account.User) error {
	bets, err := marshalBets(u.Bets)
	if err != nil {
		return err
	}
	res, err := p.db.ExecContext(ctx, `
		INSERT INTO users (id, nickname, password_hash, wallet, bets, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO NOTHING`,
		u.ID, u.Nickname, u.PasswordHash, u.Wallet, bets, u.CreatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return account.ErrDuplicateNickname
	}
	return nil
}

// UpdateWallet sobrescreve wallet e bets sem versão (último a escrever vence)
func (p *Postgres) UpdateWallet(ctx context.Context, id string, wallet int64, bets []account.Bet) error {
	raw, err := marshalBets(bets)
	if err != nil {
		return err
	}
	res, err := p.db.ExecContext(ctx, `UPDATE users SET wallet=$1, bets=$2 WHERE id=$3`, wallet, raw, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (p *Postgres) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	res, err := p.db.ExecContext(ctx, `UPDATE users SET password_hash=$1 WHERE id=$2`, hash, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AppendPrediction grava o palpite; o timestamp vem do relógio do banco
func (p *Postgres) AppendPrediction(ctx context.Context, pr account.Prediction) (account.Prediction, error) {
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO predictions (id, name, team, points, match_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING server_ts`,
		pr.ID, pr.Name, pr.Team, pr.Points, pr.MatchID, pr.CreatedAt,
	).Scan(&pr.Timestamp)
	if err != nil {
		return account.Prediction{}, err
	}
	return pr, nil
}

// ListPredictions devolve o log completo, mais novos primeiro
func (p *Postgres) ListPredictions(ctx context.Context) ([]account.Prediction, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, name, team, points, match_id, created_at, server_ts
		FROM predictions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []account.Prediction{}
	for rows.Next() {
		var pr account.Prediction
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Team, &pr.Points, &pr.MatchID, &pr.CreatedAt, &pr.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

func marshalBets(bets []account.Bet) (string, error) {
	if bets == nil {
		bets = []account.Bet{}
	}
	b, err := json.Marshal(bets)
	if err != nil {
		return "", fmt.Errorf("encode bets: %w", err)
	}
	return string(b), nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return account.ErrNotFound
	}
	return nil
}
