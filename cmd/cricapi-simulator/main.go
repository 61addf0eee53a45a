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

	simulator "github.com/radieske/cricket-predictor/internal/cricapi-simulator"
	"github.com/radieske/cricket-predictor/internal/shared/config"
	"github.com/radieske/cricket-predictor/internal/shared/logger"
	"github.com/radieske/cricket-predictor/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "cricapi-simulator"
	}
	log := logger.Must(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cricapi_sim_requests_total",
		Help: "requisições a /v1/series_info por resultado",
	}, []string{"outcome"})
	prometheus.MustRegister(requests)

	sim := simulator.NewServer(log, cfg.CricAPIKey, cfg.SimulatorFailureRate)
	sim.OnRequest = func(outcome string) { requests.WithLabelValues(outcome).Inc() }

	publicSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           sim.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	metricsSrv := metrics.NewMetricsServer(cfg.MetricsPort, nil)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range []*http.Server{publicSrv, metricsSrv} {
		srv := srv
		g.Go(func() error {
			log.Info("cricapi simulator listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = publicSrv.Shutdown(shutdownCtx)
		return metricsSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("cricapi simulator stopped with error", zap.Error(err))
	}
}
