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

	"github.com/radieske/cricket-predictor/internal/prediction-feed-worker/consumer"
	"github.com/radieske/cricket-predictor/internal/prediction-feed-worker/pubsub"
	sharedcache "github.com/radieske/cricket-predictor/internal/shared/cache"
	"github.com/radieske/cricket-predictor/internal/shared/config"
	"github.com/radieske/cricket-predictor/internal/shared/kafka"
	"github.com/radieske/cricket-predictor/internal/shared/logger"
	"github.com/radieske/cricket-predictor/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "prediction-feed-worker"
	}
	log := logger.Must(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Consumer group prediction-feed-worker
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicPredictionsRecorded, "prediction-feed-worker")
	defer reader.Close()

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "feed_worker_messages_consumed_total", Help: "mensagens consumidas"})
	broadcast := prometheus.NewCounter(prometheus.CounterOpts{Name: "feed_worker_broadcasts_total", Help: "sinais publicados no Redis"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "feed_worker_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, broadcast, errorsBy)

	proc := &consumer.Processor{
		Log:         log,
		Reader:      reader,
		Pub:         pubsub.NewRedisBroadcaster(redisClient),
		Channel:     cfg.RedisPubSubChannel,
		OnConsumed:  func() { consumed.Inc() },
		OnBroadcast: func() { broadcast.Inc() },
		OnError:     func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	metricsSrv := metrics.NewMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		log.Info("prediction-feed-worker started", zap.String("topic", cfg.TopicPredictionsRecorded))
		err := proc.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("prediction-feed-worker stopped with error", zap.Error(err))
	}
	log.Info("prediction-feed-worker stopped")
}
