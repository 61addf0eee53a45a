package match

import (
	"sort"
	"strings"

	"github.com/radieske/cricket-predictor/internal/predictor-api/match/cricapi"
)

// nomes usados pela API enquanto o confronto não está definido
var placeholderTeams = map[string]struct{}{
	"tbc":             {},
	"tba":             {},
	"to be confirmed": {},
	"to be announced": {},
}

// IsPlaceholderTeam reconhece "Tbc" e variações, sem diferenciar caixa
func IsPlaceholderTeam(name string) bool {
	_, ok := placeholderTeams[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Format converte um registro bruto da API no formato da UI.
// Retorna false quando o registro não tem as duas seleções.
func Format(raw cricapi.RawMatch) (Match, bool) {
	if len(raw.Teams) < 2 || raw.Teams[0] == "" || raw.Teams[1] == "" {
		return Match{}, false
	}

	status := StatusUpcoming
	switch {
	case raw.MatchEnded:
		status = StatusEnded
	case raw.MatchStarted:
		status = StatusLive
	}

	return Match{
		ID:          raw.ID,
		Team1:       buildTeam(raw.Teams[0], teamInfoAt(raw.TeamInfo, 0), DefaultTeam1Color),
		Team2:       buildTeam(raw.Teams[1], teamInfoAt(raw.TeamInfo, 1), DefaultTeam2Color),
		Venue:       raw.Venue,
		MatchName:   raw.Name,
		Date:        raw.Date,
		DateTimeGMT: raw.DateTimeGMT,
		Status:      status,
		StatusText:  raw.Status,
	}, true
}

// SelectUpcoming filtra partidas apostáveis (duas seleções definidas, nem iniciada
// nem encerrada), formata e ordena por horário de início crescente.
func SelectUpcoming(raws []cricapi.RawMatch) []Match {
	out := make([]Match, 0, len(raws))
	for _, raw := range raws {
		if raw.MatchStarted || raw.MatchEnded {
			continue
		}
		if len(raw.Teams) != 2 || IsPlaceholderTeam(raw.Teams[0]) || IsPlaceholderTeam(raw.Teams[1]) {
			continue
		}
		if m, ok := Format(raw); ok {
			out = append(out, m)
		}
	}
	SortByStart(out)
	return out
}

// SortByStart ordena por início; horários inválidos vão para o fim
func SortByStart(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		ti, ei := ms[i].StartTime()
		tj, ej := ms[j].StartTime()
		switch {
		case ei != nil:
			return false
		case ej != nil:
			return true
		}
		return ti.Before(tj)
	})
}

func teamInfoAt(infos []cricapi.TeamInfo, i int) cricapi.TeamInfo {
	if i < len(infos) {
		return infos[i]
	}
	return cricapi.TeamInfo{}
}

func buildTeam(name string, info cricapi.TeamInfo, defaultColor string) Team {
	short := info.ShortName
	if short == "" {
		short = shortCode(name)
	}
	flag, ok := teamFlags[name]
	if !ok {
		flag = DefaultFlag
	}
	color, ok := teamColors[name]
	if !ok {
		color = defaultColor
	}
	return Team{Name: name, ShortName: short, Flag: flag, Color: color}
}

// shortCode usa as três primeiras letras do nome, em maiúsculas
func shortCode(name string) string {
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}
