package simulator

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/match/cricapi"
)

// Server imita GET /v1/series_info da CricAPI
type Server struct {
	Log         *zap.Logger
	APIKey      string // vazio aceita qualquer chave
	FailureRate int    // % de respostas status "failure"
	Now         func() time.Time
	Rand        func(n int) int

	OnRequest func(outcome string) // métricas
}

func NewServer(log *zap.Logger, apiKey string, failureRate int) *Server {
	return &Server{Log: log, APIKey: apiKey, FailureRate: failureRate, Now: time.Now, Rand: rand.Intn}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/series_info", s.seriesInfo)
	return mux
}

func (s *Server) seriesInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// a CricAPI responde 200 mesmo em falha lógica; o status vem no corpo
	if s.APIKey != "" && r.URL.Query().Get("apikey") != s.APIKey {
		s.report("invalid_key")
		writeJSON(w, cricapi.SeriesInfoResponse{Status: "failure", Reason: "Invalid API Key"})
		return
	}
	if s.FailureRate > 0 && s.Rand(100) < s.FailureRate {
		s.report("failure")
		writeJSON(w, cricapi.SeriesInfoResponse{Status: "failure", Reason: "hits today exceeded hits limit"})
		return
	}

	s.report("success")
	writeJSON(w, cricapi.SeriesInfoResponse{
		Status: "success",
		Data:   &cricapi.SeriesData{MatchList: Catalog(s.Now())},
	})
}

func (s *Server) report(outcome string) {
	s.Log.Debug("series_info served", zap.String("outcome", outcome))
	if s.OnRequest != nil {
		s.OnRequest(outcome)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
