package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTime(t *testing.T) {
	want := time.Date(2026, 2, 8, 13, 30, 0, 0, time.UTC)

	for _, s := range []string{"2026-02-08T13:30:00", "2026-02-08T13:30:00Z", "2026-02-08T19:00:00+05:30", "2026-02-08T13:30"} {
		got, err := Match{DateTimeGMT: s}.StartTime()
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), "%s -> %s", s, got)
	}

	_, err := Match{DateTimeGMT: ""}.StartTime()
	assert.ErrorIs(t, err, ErrNoStartTime)
	_, err = Match{DateTimeGMT: "tomorrow"}.StartTime()
	assert.ErrorIs(t, err, ErrNoStartTime)
}

func TestBettingOpen(t *testing.T) {
	m := Match{ID: "m1", DateTimeGMT: "2026-02-08T13:30:00"}
	start := time.Date(2026, 2, 8, 13, 30, 0, 0, time.UTC)

	assert.True(t, BettingOpen(m, start.Add(-time.Hour)))
	assert.True(t, BettingOpen(m, start.Add(-time.Nanosecond)))

	// fecha no início e nunca reabre
	for _, later := range []time.Duration{0, time.Second, time.Hour, 30 * 24 * time.Hour} {
		assert.False(t, BettingOpen(m, start.Add(later)), "now=start+%s", later)
	}

	// horário local não altera a decisão
	kolkata := time.FixedZone("IST", 19800)
	assert.True(t, BettingOpen(m, time.Date(2026, 2, 8, 18, 59, 0, 0, kolkata)))
	assert.False(t, BettingOpen(m, time.Date(2026, 2, 8, 19, 0, 0, 0, kolkata)))

	assert.False(t, BettingOpen(Match{DateTimeGMT: "n/a"}, start.Add(-time.Hour)))
}

func TestTimeUntil(t *testing.T) {
	m := Match{DateTimeGMT: "2026-02-10T12:00:00"}
	start := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2d 3h", TimeUntil(m, start.Add(-(51*time.Hour + 10*time.Minute))))
	assert.Equal(t, "3h 5m", TimeUntil(m, start.Add(-(3*time.Hour + 5*time.Minute))))
	assert.Equal(t, "42m", TimeUntil(m, start.Add(-42*time.Minute)))
	assert.Equal(t, "Starting soon!", TimeUntil(m, start))
}

func TestKickoffIST(t *testing.T) {
	assert.Equal(t, "07:00 PM IST", KickoffIST(Match{DateTimeGMT: "2026-02-08T13:30:00"}))
	assert.Empty(t, KickoffIST(Match{}))
}

func TestGroupByDate(t *testing.T) {
	now := time.Date(2026, 2, 8, 8, 0, 0, 0, time.UTC)
	ms := []Match{
		{ID: "c", DateTimeGMT: "2026-02-12T09:30:00"},
		{ID: "a", DateTimeGMT: "2026-02-08T13:30:00"},
		{ID: "b1", DateTimeGMT: "2026-02-09T05:30:00"},
		{ID: "b2", DateTimeGMT: "2026-02-09T09:30:00"},
		{ID: "x", DateTimeGMT: ""},
	}

	groups := GroupByDate(ms, now)
	require.Len(t, groups, 3)

	assert.Equal(t, "2026-02-08", groups[0].Date)
	assert.Equal(t, "Today", groups[0].DisplayDate)
	assert.Equal(t, "Tomorrow", groups[1].DisplayDate)
	assert.Len(t, groups[1].Matches, 2)
	assert.Equal(t, "Thu, 12 Feb", groups[2].DisplayDate)
}
