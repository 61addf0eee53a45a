package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/betting"
)

// confirmBet usa o usuário atual da loja, não o guardado na sessão
func (a *API) confirmBet(w http.ResponseWriter, r *http.Request) {
	st, err := a.Sessions.Load(r.Context(), r.Header.Get(SessionHeader))
	if err != nil {
		writeErr(w, err)
		return
	}

	var req BetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	m, ok := a.Matches.Find(req.MatchID)
	if !ok {
		writeErr(w, errMatchNotFound)
		return
	}

	u, err := a.Accounts.GetUser(r.Context(), st.User.ID)
	if err != nil {
		writeErr(w, err)
		return
	}

	updated, err := a.Bets.ConfirmBet(r.Context(), u, m, req.Team, req.Points)
	if err != nil {
		writeErr(w, err)
		return
	}

	st.User = updated
	if err := a.Sessions.Save(r.Context(), st); err != nil {
		a.Log.Warn("session rewrite failed", zap.String("user_id", updated.ID), zap.Error(err))
	}
	writeJSON(w, http.StatusOK, updated)
}

// listPredictions devolve o log completo, mais novos primeiro
func (a *API) listPredictions(w http.ResponseWriter, r *http.Request) {
	ps, err := a.Accounts.ListPredictions(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	ps, err := a.Accounts.ListPredictions(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, betting.Summarize(ps))
}
