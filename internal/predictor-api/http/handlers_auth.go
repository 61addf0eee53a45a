package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
	"github.com/radieske/cricket-predictor/internal/predictor-api/session"
)

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	u, err := a.Accounts.Register(r.Context(), req.Nickname, req.Password, a.InitialPoints)
	if err != nil {
		writeErr(w, err)
		return
	}
	a.openSession(w, r, u, http.StatusCreated)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	u, err := a.Accounts.Login(r.Context(), req.Nickname, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	a.openSession(w, r, u, http.StatusOK)
}

// openSession grava o slot de sessão; falha aqui não desfaz o login
func (a *API) openSession(w http.ResponseWriter, r *http.Request, u account.User, status int) {
	st := session.NewState(u)
	if err := a.Sessions.Save(r.Context(), st); err != nil {
		a.Log.Error("session save failed", zap.String("user_id", u.ID), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "session unavailable")
		return
	}
	writeJSON(w, status, SessionResponse{Token: st.Token, User: st.User})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	if token := r.Header.Get(SessionHeader); token != "" {
		if err := a.Sessions.Delete(r.Context(), token); err != nil {
			a.Log.Warn("session delete failed", zap.Error(err))
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// restore relê o usuário da loja e regrava o slot; a sessão nunca é a fonte da verdade
func (a *API) restore(w http.ResponseWriter, r *http.Request) {
	st, err := a.Sessions.Load(r.Context(), r.Header.Get(SessionHeader))
	if err != nil {
		writeErr(w, err)
		return
	}
	u, err := a.Accounts.GetUser(r.Context(), st.User.ID)
	if errors.Is(err, account.ErrNotFound) {
		_ = a.Sessions.Delete(r.Context(), st.Token)
		writeErr(w, session.ErrNoSession)
		return
	}
	if err != nil {
		writeErr(w, err)
		return
	}
	st.User = u
	if err := a.Sessions.Save(r.Context(), st); err != nil {
		a.Log.Warn("session rewrite failed", zap.String("user_id", u.ID), zap.Error(err))
	}
	writeJSON(w, http.StatusOK, SessionResponse{Token: st.Token, User: u})
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := a.Accounts.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
