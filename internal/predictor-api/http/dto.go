package httpapi

import (
	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
	"github.com/radieske/cricket-predictor/internal/predictor-api/match"
)

// CredentialsRequest é o corpo de /v1/auth/register e /v1/auth/login
type CredentialsRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// SessionResponse devolve o token e o usuário sem hash
type SessionResponse struct {
	Token string       `json:"token"`
	User  account.User `json:"user"`
}

// BetRequest é o corpo de POST /v1/bets
type BetRequest struct {
	MatchID string `json:"matchId"`
	Team    string `json:"team"`
	Points  int64  `json:"points"`
}

// MatchView enriquece a partida com o estado da janela de apostas
type MatchView struct {
	match.Match
	BettingOpen bool   `json:"bettingOpen"`
	StartsIn    string `json:"startsIn"`
	Kickoff     string `json:"kickoff"`
}

// DateGroupView é um dia com as partidas já enriquecidas
type DateGroupView struct {
	Date        string      `json:"date"`
	DisplayDate string      `json:"displayDate"`
	Matches     []MatchView `json:"matches"`
}
