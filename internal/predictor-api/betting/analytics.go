package betting

import (
	"math"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
	"github.com/radieske/cricket-predictor/internal/predictor-api/match"
)

// TeamVotes resume os palpites de uma seleção
type TeamVotes struct {
	Team    string `json:"team"`
	Votes   int    `json:"votes"`
	Points  int64  `json:"points"`
	Percent int    `json:"percent"` // arredondado; os dois lados podem não somar 100
}

// MatchAnalytics é a distribuição de votos de uma partida
type MatchAnalytics struct {
	MatchID    string    `json:"matchId"`
	TotalVotes int       `json:"totalVotes"`
	Team1      TeamVotes `json:"team1"`
	Team2      TeamVotes `json:"team2"`
}

// Analyze conta os palpites da partida por seleção
func Analyze(m match.Match, ps []account.Prediction) MatchAnalytics {
	a := MatchAnalytics{
		MatchID: m.ID,
		Team1:   TeamVotes{Team: m.Team1.Name},
		Team2:   TeamVotes{Team: m.Team2.Name},
	}
	for _, p := range ps {
		if p.MatchID != m.ID {
			continue
		}
		a.TotalVotes++
		switch p.Team {
		case m.Team1.Name:
			a.Team1.Votes++
			a.Team1.Points += p.Points
		case m.Team2.Name:
			a.Team2.Votes++
			a.Team2.Points += p.Points
		}
	}
	a.Team1.Percent = percent(a.Team1.Votes, a.TotalVotes)
	a.Team2.Percent = percent(a.Team2.Votes, a.TotalVotes)
	return a
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Dashboard traz os totais do feed inteiro
type Dashboard struct {
	TotalBets int   `json:"totalBets"`
	TotalPool int64 `json:"totalPool"`
}

func Summarize(ps []account.Prediction) Dashboard {
	d := Dashboard{TotalBets: len(ps)}
	for _, p := range ps {
		d.TotalPool += p.Points
	}
	return d
}
