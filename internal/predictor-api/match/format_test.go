package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/cricket-predictor/internal/predictor-api/match/cricapi"
)

func rawMatch(id, t1, t2, start string) cricapi.RawMatch {
	return cricapi.RawMatch{
		ID:          id,
		Name:        t1 + " vs " + t2,
		Teams:       []string{t1, t2},
		Venue:       "Wankhede Stadium, Mumbai",
		Date:        start[:10],
		DateTimeGMT: start,
		Status:      "Match not started",
	}
}

func TestFormat(t *testing.T) {
	t.Run("known teams use table metadata", func(t *testing.T) {
		raw := rawMatch("m1", "India", "Pakistan", "2026-02-15T13:30:00")
		raw.TeamInfo = []cricapi.TeamInfo{{Name: "India", ShortName: "IND"}, {Name: "Pakistan", ShortName: "PAK"}}

		m, ok := Format(raw)
		require.True(t, ok)
		assert.Equal(t, Team{Name: "India", ShortName: "IND", Flag: "🇮🇳", Color: "#FF9933"}, m.Team1)
		assert.Equal(t, Team{Name: "Pakistan", ShortName: "PAK", Flag: "🇵🇰", Color: "#01411C"}, m.Team2)
		assert.Equal(t, StatusUpcoming, m.Status)
		assert.Equal(t, "Match not started", m.StatusText)
		assert.Equal(t, "India vs Pakistan", m.MatchName)
	})

	t.Run("unknown teams fall back to defaults and derived short codes", func(t *testing.T) {
		m, ok := Format(rawMatch("m2", "Hong Kong", "Uganda", "2026-02-15T13:30:00"))
		require.True(t, ok)
		assert.Equal(t, Team{Name: "Hong Kong", ShortName: "HON", Flag: DefaultFlag, Color: DefaultTeam1Color}, m.Team1)
		assert.Equal(t, Team{Name: "Uganda", ShortName: "UGA", Flag: DefaultFlag, Color: DefaultTeam2Color}, m.Team2)
	})

	t.Run("short names under three letters are kept whole", func(t *testing.T) {
		m, ok := Format(rawMatch("m3", "Ab", "Oman", "2026-02-15T13:30:00"))
		require.True(t, ok)
		assert.Equal(t, "AB", m.Team1.ShortName)
		assert.Equal(t, "OMA", m.Team2.ShortName)
	})

	t.Run("missing a team yields no result", func(t *testing.T) {
		for _, teams := range [][]string{nil, {"India"}, {"India", ""}, {"", "India"}} {
			raw := rawMatch("m4", "x", "y", "2026-02-15T13:30:00")
			raw.Teams = teams
			_, ok := Format(raw)
			assert.False(t, ok, "teams=%v", teams)
		}
	})

	t.Run("lifecycle status", func(t *testing.T) {
		raw := rawMatch("m5", "India", "Nepal", "2026-02-15T13:30:00")
		raw.MatchStarted = true
		m, _ := Format(raw)
		assert.Equal(t, StatusLive, m.Status)

		raw.MatchEnded = true
		m, _ = Format(raw)
		assert.Equal(t, StatusEnded, m.Status)
	})
}

func TestSelectUpcoming(t *testing.T) {
	started := rawMatch("started", "India", "Oman", "2026-02-10T09:30:00")
	started.MatchStarted = true
	ended := rawMatch("ended", "India", "Italy", "2026-02-09T09:30:00")
	ended.MatchEnded = true
	three := rawMatch("three", "A", "B", "2026-02-10T09:30:00")
	three.Teams = []string{"A", "B", "C"}

	got := SelectUpcoming([]cricapi.RawMatch{
		rawMatch("late", "Nepal", "Canada", "2026-02-20T13:30:00"),
		rawMatch("tbc", "Tbc", "India", "2026-02-11T13:30:00"),
		rawMatch("tba", "England", "TO BE CONFIRMED", "2026-02-11T13:30:00"),
		started,
		ended,
		three,
		rawMatch("early", "Ireland", "Scotland", "2026-02-12T05:30:00"),
	})

	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
}

func TestSortByStart_InvalidLast(t *testing.T) {
	ms := []Match{
		{ID: "bad", DateTimeGMT: "someday"},
		{ID: "b", DateTimeGMT: "2026-02-10T10:00:00"},
		{ID: "a", DateTimeGMT: "2026-02-10T09:00:00Z"},
	}
	SortByStart(ms)
	assert.Equal(t, []string{"a", "b", "bad"}, []string{ms[0].ID, ms[1].ID, ms[2].ID})
}

func TestIsPlaceholderTeam(t *testing.T) {
	assert.True(t, IsPlaceholderTeam("Tbc"))
	assert.True(t, IsPlaceholderTeam(" tba "))
	assert.True(t, IsPlaceholderTeam("To Be Announced"))
	assert.False(t, IsPlaceholderTeam("India"))
}
