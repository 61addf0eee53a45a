package events

import "time"

// Evento publicado no tópico "predictions_recorded" a cada palpite gravado.
type PredictionRecorded struct {
	PredictionID string    `json:"prediction_id"`
	Name         string    `json:"name"`
	Team         string    `json:"team"`
	Points       int64     `json:"points"`
	MatchID      string    `json:"match_id"`
	CreatedAt    time.Time `json:"created_at"`
	TsUnixMs     int64     `json:"ts_unix_ms"`
}
