package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
	"github.com/radieske/cricket-predictor/internal/predictor-api/match"
	"github.com/radieske/cricket-predictor/internal/predictor-api/session"
)

// SessionHeader carrega o token devolvido por login/register
const SessionHeader = "X-Session-Token"

// Matches é o snapshot atual de partidas (match.Refresher)
type Matches interface {
	Current() []match.Match
	Find(id string) (match.Match, bool)
	Refresh(ctx context.Context) []match.Match
}

// Accounts é o subconjunto de account.Service exposto pela API
type Accounts interface {
	Register(ctx context.Context, nickname, password string, initialPoints int64) (account.User, error)
	Login(ctx context.Context, nickname, password string) (account.User, error)
	GetUser(ctx context.Context, id string) (account.User, error)
	ListPredictions(ctx context.Context) ([]account.Prediction, error)
}

// Bets confirma apostas (betting.Service)
type Bets interface {
	ConfirmBet(ctx context.Context, u account.User, m match.Match, team string, points int64) (account.User, error)
}

// Sessions persiste o estado de sessão (session.RedisStore)
type Sessions interface {
	Save(ctx context.Context, st session.State) error
	Load(ctx context.Context, token string) (session.State, error)
	Delete(ctx context.Context, token string) error
}

// API expõe os endpoints REST do jogo e o WebSocket do feed
type API struct {
	Log           *zap.Logger
	Matches       Matches
	Accounts      Accounts
	Bets          Bets
	Sessions      Sessions
	Feed          http.HandlerFunc // ws.Hub.HandleWS
	InitialPoints int64
	AllowOrigins  []string
	Now           func() time.Time
}

// Router retorna o roteador HTTP com CORS liberado para a UI
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.origins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", SessionHeader},
		MaxAge:         300,
	}))

	r.Get("/v1/matches", a.listMatches)
	r.Get("/v1/matches/by-date", a.matchesByDate)
	r.Post("/v1/matches/refresh", a.refreshMatches)
	r.Get("/v1/matches/{id}/analytics", a.matchAnalytics)

	r.Post("/v1/auth/register", a.register)
	r.Post("/v1/auth/login", a.login)
	r.Post("/v1/auth/logout", a.logout)
	r.Get("/v1/session", a.restore)
	r.Get("/v1/users/{id}", a.getUser)

	r.Post("/v1/bets", a.confirmBet)
	r.Get("/v1/predictions", a.listPredictions)
	r.Get("/v1/dashboard", a.dashboard)

	if a.Feed != nil {
		r.Get("/ws/predictions", a.Feed)
	}
	return r
}

func (a *API) origins() []string {
	if len(a.AllowOrigins) == 0 {
		return []string{"*"}
	}
	return a.AllowOrigins
}

func (a *API) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
