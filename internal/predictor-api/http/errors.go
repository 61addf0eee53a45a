package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
	"github.com/radieske/cricket-predictor/internal/predictor-api/betting"
	"github.com/radieske/cricket-predictor/internal/predictor-api/session"
)

var errMatchNotFound = errors.New("match not found")

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor traduz os erros de domínio em status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, account.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, account.ErrInvalidCredential), errors.Is(err, session.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, account.ErrNotFound), errors.Is(err, errMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, account.ErrDuplicateNickname),
		errors.Is(err, betting.ErrBettingClosed),
		errors.Is(err, betting.ErrAlreadyBet):
		return http.StatusConflict
	case errors.Is(err, betting.ErrUnknownTeam),
		errors.Is(err, betting.ErrInvalidPoints),
		errors.Is(err, betting.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity
	case errors.Is(err, account.ErrNetworkFailure):
		return http.StatusServiceUnavailable
	case errors.Is(err, account.ErrStoreWrite):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeErr não repassa o texto do driver: falhas de store respondem só com o sentinel
func writeErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		msg = "internal error"
	case http.StatusServiceUnavailable:
		msg = account.ErrNetworkFailure.Error()
	case http.StatusBadGateway:
		msg = account.ErrStoreWrite.Error()
	}
	writeError(w, status, msg)
}
