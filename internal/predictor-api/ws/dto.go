package ws

import "github.com/radieske/cricket-predictor/internal/predictor-api/account"

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// MatchID vazio em subscribe significa "todas as partidas"
type ClientMsg struct {
	Type    string `json:"type"`
	MatchID string `json:"matchId"`
}

// Snapshot é o feed enviado ao cliente, já filtrado pela partida assinada
type Snapshot struct {
	Type    string               `json:"type"` // sempre "predictions"
	MatchID string               `json:"matchId,omitempty"`
	Payload []account.Prediction `json:"payload"`
}
