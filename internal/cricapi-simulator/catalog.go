package simulator

import (
	"fmt"
	"time"

	"github.com/radieske/cricket-predictor/internal/predictor-api/match/cricapi"
)

type fixture struct {
	team1, team2 string
	short1       string
	short2       string
	venue        string
	offset       time.Duration // relativo ao início do catálogo
}

// Catálogo fixo de partidas simuladas; inclui casos que a API real entrega
// (seleção a confirmar, partida em andamento, partida encerrada)
var fixtures = []fixture{
	{"India", "Pakistan", "IND", "PAK", "R.Premadasa Stadium, Colombo", -26 * time.Hour},
	{"Australia", "England", "AUS", "ENG", "Wankhede Stadium, Mumbai", -90 * time.Minute},
	{"South Africa", "New Zealand", "SA", "NZ", "Eden Gardens, Kolkata", 3 * time.Hour},
	{"West Indies", "Afghanistan", "", "", "Narendra Modi Stadium, Ahmedabad", 20 * time.Hour},
	{"Sri Lanka", "Ireland", "SL", "IRE", "R.Premadasa Stadium, Colombo", 27 * time.Hour},
	{"Tbc", "Tbc", "", "", "Sinhalese Sports Club, Colombo", 50 * time.Hour},
	{"Bangladesh", "Netherlands", "BAN", "NED", "Arun Jaitley Stadium, Delhi", 44 * time.Hour},
	{"Scotland", "Italy", "SCO", "ITA", "Eden Gardens, Kolkata", 68 * time.Hour},
}

// Catalog gera a série com horários relativos a now, no formato da CricAPI
// (dateTimeGMT sem "Z", ordem arbitrária)
func Catalog(now time.Time) []cricapi.RawMatch {
	base := now.UTC().Truncate(time.Hour)
	out := make([]cricapi.RawMatch, 0, len(fixtures))
	for i, f := range fixtures {
		start := base.Add(f.offset)
		started := !start.After(now)
		ended := start.Add(4 * time.Hour).Before(now)

		status := "Match not started"
		switch {
		case ended:
			status = f.team1 + " won by 6 wickets"
		case started:
			status = "In progress"
		}

		rm := cricapi.RawMatch{
			ID:           fmt.Sprintf("sim-%03d", i+1),
			Name:         fmt.Sprintf("%s vs %s, Match %d", f.team1, f.team2, i+1),
			MatchType:    "t20",
			Status:       status,
			Venue:        f.venue,
			Date:         start.Format("2006-01-02"),
			DateTimeGMT:  start.Format("2006-01-02T15:04:05"),
			Teams:        []string{f.team1, f.team2},
			MatchStarted: started,
			MatchEnded:   ended,
		}
		if f.short1 != "" {
			rm.TeamInfo = []cricapi.TeamInfo{
				{Name: f.team1, ShortName: f.short1},
				{Name: f.team2, ShortName: f.short2},
			}
		}
		out = append(out, rm)
	}
	// a API real não garante ordem; inverte para exercitar a ordenação do cliente
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
