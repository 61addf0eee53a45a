package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
	accountrepo "github.com/radieske/cricket-predictor/internal/predictor-api/account/repo"
	"github.com/radieske/cricket-predictor/internal/predictor-api/betting"
	"github.com/radieske/cricket-predictor/internal/predictor-api/feed"
	httpapi "github.com/radieske/cricket-predictor/internal/predictor-api/http"
	"github.com/radieske/cricket-predictor/internal/predictor-api/match"
	mcache "github.com/radieske/cricket-predictor/internal/predictor-api/match/cache"
	"github.com/radieske/cricket-predictor/internal/predictor-api/match/cricapi"
	"github.com/radieske/cricket-predictor/internal/predictor-api/producer"
	"github.com/radieske/cricket-predictor/internal/predictor-api/session"
	"github.com/radieske/cricket-predictor/internal/predictor-api/ws"
	sharedcache "github.com/radieske/cricket-predictor/internal/shared/cache"
	"github.com/radieske/cricket-predictor/internal/shared/config"
	"github.com/radieske/cricket-predictor/internal/shared/db"
	"github.com/radieske/cricket-predictor/internal/shared/kafka"
	"github.com/radieske/cricket-predictor/internal/shared/logger"
	"github.com/radieske/cricket-predictor/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "predictor-api"
	}
	log := logger.Must(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	// Postgres: usuários e log de palpites
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	// Redis: cache de partidas, sessões e sinal do feed
	rdb, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writer (tópico predictions_recorded)
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicPredictionsRecorded)
	defer writer.Close()

	// Métricas Prometheus
	fetchOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "predictor_match_fetch_total", Help: "buscas de partidas por resultado"}, []string{"outcome"})
	betsConfirmed := prometheus.NewCounter(prometheus.CounterOpts{Name: "predictor_bets_confirmed_total", Help: "apostas confirmadas"})
	pointsWagered := prometheus.NewCounter(prometheus.CounterOpts{Name: "predictor_points_wagered_total", Help: "pontos apostados"})
	betsRejected := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "predictor_bets_rejected_total", Help: "apostas recusadas por motivo"}, []string{"reason"})
	feedDeliveries := prometheus.NewCounter(prometheus.CounterOpts{Name: "predictor_feed_deliveries_total", Help: "snapshots do feed entregues"})
	feedErrors := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "predictor_feed_errors_total", Help: "erros do feed por estágio"}, []string{"stage"})
	wsConnections := prometheus.NewGauge(prometheus.GaugeOpts{Name: "predictor_ws_connections", Help: "clientes WebSocket conectados"})
	prometheus.MustRegister(fetchOutcomes, betsConfirmed, pointsWagered, betsRejected, feedDeliveries, feedErrors, wsConnections)

	// Partidas: CricAPI -> cache Redis -> snapshot em memória
	fetcher := match.NewFetcher(
		cricapi.New(cfg.CricAPIBaseURL, cfg.CricAPIKey, cfg.CricAPISeriesID),
		mcache.New(rdb, cfg.MatchCacheKey),
		log,
	)
	fetcher.MaxAge = cfg.MatchCacheMaxAge
	fetcher.OnOutcome = func(outcome string) { fetchOutcomes.WithLabelValues(outcome).Inc() }
	refresher := match.NewRefresher(fetcher, cfg.MatchRefreshInterval, log)

	// Contas, apostas e feed
	accounts := account.NewService(accountrepo.NewPostgres(pg), producer.NewKafkaPublisher(writer), log)

	bets := betting.NewService(accounts, log)
	bets.OnConfirmed = func(_ string, points int64) {
		betsConfirmed.Inc()
		pointsWagered.Add(float64(points))
	}
	bets.OnRejected = func(err error) { betsRejected.WithLabelValues(rejectReason(err)).Inc() }

	hub := ws.NewHub(allowOrigin(cfg.CORSAllowedOrigins), log)
	hub.OnConnections = func(n int) { wsConnections.Set(float64(n)) }

	predictionFeed := feed.New(accounts, feed.NewRedisSignal(rdb, cfg.RedisPubSubChannel), log)
	predictionFeed.OnDelivered = func(int) { feedDeliveries.Inc() }
	predictionFeed.OnError = func(stage string) { feedErrors.WithLabelValues(stage).Inc() }

	api := &httpapi.API{
		Log:           log,
		Matches:       refresher,
		Accounts:      accounts,
		Bets:          bets,
		Sessions:      session.NewRedisStore(rdb, cfg.SessionTTL),
		Feed:          hub.HandleWS,
		InitialPoints: cfg.InitialPoints,
		AllowOrigins:  cfg.CORSAllowedOrigins,
	}
	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsSrv := metrics.NewMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return refresher.Run(gctx) })

	g.Go(func() error {
		unsubscribe := predictionFeed.Subscribe(gctx, hub.Broadcast)
		<-gctx.Done()
		unsubscribe()
		return nil
	})

	g.Go(func() error {
		log.Info("predictor-api listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		_ = apiSrv.Shutdown(shutdownCtx)
		_ = metricsSrv.Shutdown(shutdownCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("predictor-api stopped with error", zap.Error(err))
	}
	log.Info("predictor-api stopped")
}

// allowOrigin aplica a mesma lista do CORS ao upgrade do WebSocket
func allowOrigin(origins []string) func(r *http.Request) bool {
	if len(origins) == 0 {
		return func(*http.Request) bool { return true }
	}
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		_, ok := allowed[r.Header.Get("Origin")]
		return ok
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, betting.ErrBettingClosed):
		return "closed"
	case errors.Is(err, betting.ErrUnknownTeam):
		return "unknown_team"
	case errors.Is(err, betting.ErrInvalidPoints):
		return "invalid_points"
	case errors.Is(err, betting.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, betting.ErrAlreadyBet):
		return "already_bet"
	}
	return "other"
}
