package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/radieske/cricket-predictor/internal/predictor-api/betting"
	"github.com/radieske/cricket-predictor/internal/predictor-api/match"
)

func view(m match.Match, now time.Time) MatchView {
	return MatchView{
		Match:       m,
		BettingOpen: match.BettingOpen(m, now),
		StartsIn:    match.TimeUntil(m, now),
		Kickoff:     match.KickoffIST(m),
	}
}

func views(ms []match.Match, now time.Time) []MatchView {
	out := make([]MatchView, 0, len(ms))
	for _, m := range ms {
		out = append(out, view(m, now))
	}
	return out
}

// listMatches devolve o snapshot atual, ordenado por início
func (a *API) listMatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, views(a.Matches.Current(), a.now()))
}

// refreshMatches força uma busca no provedor; se vier vazia o snapshot anterior é mantido
func (a *API) refreshMatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, views(a.Matches.Refresh(r.Context()), a.now()))
}

// matchesByDate agrupa o snapshot por dia UTC (Today/Tomorrow/data)
func (a *API) matchesByDate(w http.ResponseWriter, r *http.Request) {
	now := a.now()
	groups := match.GroupByDate(a.Matches.Current(), now)
	out := make([]DateGroupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, DateGroupView{Date: g.Date, DisplayDate: g.DisplayDate, Matches: views(g.Matches, now)})
	}
	writeJSON(w, http.StatusOK, out)
}

// matchAnalytics conta os votos por seleção de uma partida do snapshot
func (a *API) matchAnalytics(w http.ResponseWriter, r *http.Request) {
	m, ok := a.Matches.Find(chi.URLParam(r, "id"))
	if !ok {
		writeErr(w, errMatchNotFound)
		return
	}
	ps, err := a.Accounts.ListPredictions(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, betting.Analyze(m, ps))
}
