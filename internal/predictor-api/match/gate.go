package match

import (
	"fmt"
	"sort"
	"time"
)

// BettingOpen aceita apostas enquanto now for anterior ao início.
// Depois do início a janela fecha de vez; início inválido conta como fechado.
func BettingOpen(m Match, now time.Time) bool {
	start, err := m.StartTime()
	if err != nil {
		return false
	}
	return now.Before(start)
}

// TimeUntil formata o tempo restante para o início ("2d 3h", "3h 5m", "5m")
func TimeUntil(m Match, now time.Time) string {
	start, err := m.StartTime()
	if err != nil {
		return ""
	}
	diff := start.Sub(now)
	if diff <= 0 {
		return "Starting soon!"
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff%(24*time.Hour)) / int(time.Hour)
	minutes := int(diff%time.Hour) / int(time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// ist é o fuso usado pela UI para exibir horários
var ist = time.FixedZone("IST", 5*60*60+30*60)

// KickoffIST formata o horário de início no fuso da Índia ("07:00 PM IST")
func KickoffIST(m Match) string {
	start, err := m.StartTime()
	if err != nil {
		return ""
	}
	return start.In(ist).Format("03:04 PM") + " IST"
}

// DateGroup agrupa partidas de um mesmo dia (UTC)
type DateGroup struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	DisplayDate string  `json:"displayDate"`
	Matches     []Match `json:"matches"`
}

// GroupByDate agrupa por dia UTC em ordem crescente. Partidas sem horário ficam de fora.
func GroupByDate(ms []Match, now time.Time) []DateGroup {
	idx := map[string]int{}
	var groups []DateGroup
	for _, m := range ms {
		start, err := m.StartTime()
		if err != nil {
			continue
		}
		key := start.Format("2006-01-02")
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			groups = append(groups, DateGroup{Date: key, DisplayDate: displayDate(start, now)})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date < groups[j].Date })
	return groups
}

func displayDate(day, now time.Time) string {
	now = now.UTC()
	key := day.Format("2006-01-02")
	switch key {
	case now.Format("2006-01-02"):
		return "Today"
	case now.AddDate(0, 0, 1).Format("2006-01-02"):
		return "Tomorrow"
	}
	return day.Format("Mon, 2 Jan")
}
