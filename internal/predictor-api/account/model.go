package account

import (
	"sort"
	"time"
)

// User é o registro do jogador na coleção "users", chave = apelido normalizado
type User struct {
	ID           string    `json:"id"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"-"` // nunca sai para cliente nem sessão
	Wallet       int64     `json:"wallet"`
	Bets         []Bet     `json:"bets"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Bet é um palpite do próprio usuário, guardado junto do registro dele
type Bet struct {
	MatchID string `json:"matchId"`
	Team    string `json:"team"`
	Points  int64  `json:"points"`
}

// BetOn devolve o palpite do usuário para a partida, se houver
func (u User) BetOn(matchID string) (Bet, bool) {
	for _, b := range u.Bets {
		if b.MatchID == matchID {
			return b, true
		}
	}
	return Bet{}, false
}

// Prediction é um registro do feed público. Append-only.
type Prediction struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Points    int64     `json:"points"`
	MatchID   string    `json:"matchId"`
	CreatedAt time.Time `json:"createdAt"` // relógio de quem gravou
	Timestamp time.Time `json:"timestamp"` // relógio do banco
}

// SortNewestFirst ordena por CreatedAt decrescente (mais novos primeiro)
func SortNewestFirst(ps []Prediction) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].CreatedAt.After(ps[j].CreatedAt)
	})
}
