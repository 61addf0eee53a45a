package match

import (
	"errors"
	"strings"
	"time"
)

// Status é o ciclo de vida de uma partida
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusEnded    Status = "ended"
)

var ErrNoStartTime = errors.New("match has no parseable start time")

// Team carrega os metadados de exibição de uma seleção
type Team struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Flag      string `json:"flag"`
	Color     string `json:"color"`
}

// Match é o formato consumido pela UI. Imutável depois de produzido.
type Match struct {
	ID          string `json:"id"`
	Team1       Team   `json:"team1"`
	Team2       Team   `json:"team2"`
	Venue       string `json:"venue"`
	MatchName   string `json:"matchName,omitempty"`
	Date        string `json:"date"`
	DateTimeGMT string `json:"dateTimeGMT"` // ISO 8601 em UTC; "Z" opcional
	Status      Status `json:"status"`
	StatusText  string `json:"statusText,omitempty"`
}

// CacheEntry é o snapshot persistido no slot de cache de partidas
type CacheEntry struct {
	Timestamp int64   `json:"timestamp"` // epoch em milissegundos
	Matches   []Match `json:"matches"`
}

// Age retorna há quanto tempo o snapshot foi capturado
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(e.Timestamp))
}

// HasTeam indica se name é uma das duas seleções da partida
func (m Match) HasTeam(name string) bool {
	return name != "" && (m.Team1.Name == name || m.Team2.Name == name)
}

// TeamByName devolve os metadados da seleção escolhida
func (m Match) TeamByName(name string) (Team, bool) {
	switch name {
	case m.Team1.Name:
		return m.Team1, true
	case m.Team2.Name:
		return m.Team2, true
	}
	return Team{}, false
}

// StartTime interpreta DateTimeGMT sempre como UTC.
// A API omite o "Z", então ele é acrescentado quando falta.
func (m Match) StartTime() (time.Time, error) {
	return parseGMT(m.DateTimeGMT)
}

func parseGMT(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrNoStartTime
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999Z", "2006-01-02T15:04Z"} {
		if t, err := time.Parse(layout, s+"Z"); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrNoStartTime
}
