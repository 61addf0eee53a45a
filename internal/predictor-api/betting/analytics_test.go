package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
)

func TestAnalyze(t *testing.T) {
	m := testMatch("2026-02-08T14:00:00")
	ps := []account.Prediction{
		{MatchID: "M", Team: "India", Points: 10},
		{MatchID: "M", Team: "India", Points: 20},
		{MatchID: "M", Team: "Australia", Points: 5},
		{MatchID: "other", Team: "India", Points: 99},
	}

	a := Analyze(m, ps)
	assert.Equal(t, 3, a.TotalVotes)
	assert.Equal(t, TeamVotes{Team: "India", Votes: 2, Points: 30, Percent: 67}, a.Team1)
	assert.Equal(t, TeamVotes{Team: "Australia", Votes: 1, Points: 5, Percent: 33}, a.Team2)
}

func TestAnalyze_NoVotes(t *testing.T) {
	a := Analyze(testMatch(""), nil)
	assert.Zero(t, a.TotalVotes)
	assert.Zero(t, a.Team1.Percent)
	assert.Zero(t, a.Team2.Percent)
}

func TestSummarize(t *testing.T) {
	d := Summarize([]account.Prediction{{Points: 10}, {Points: 25}, {Points: 5}})
	assert.Equal(t, Dashboard{TotalBets: 3, TotalPool: 40}, d)
	assert.Equal(t, Dashboard{}, Summarize(nil))
}
