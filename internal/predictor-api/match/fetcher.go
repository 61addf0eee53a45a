package match

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/match/cricapi"
)

// DefaultMaxAge é a idade a partir da qual o cache é considerado velho
const DefaultMaxAge = 15 * time.Minute

// Resultados possíveis de uma busca, usados nas métricas
const (
	OutcomeCacheHit   = "cache_hit"
	OutcomeFetched    = "fetched"
	OutcomeStaleCache = "stale_cache"
	OutcomeFallback   = "fallback"
)

// Source é a fonte remota de partidas (CricAPI)
type Source interface {
	SeriesMatches(ctx context.Context) ([]cricapi.RawMatch, error)
}

// Cache é o slot único do último snapshot bem-sucedido.
// Load retorna (nil, nil) quando o slot está vazio.
type Cache interface {
	Load(ctx context.Context) (*CacheEntry, error)
	Store(ctx context.Context, e CacheEntry) error
}

// Fetcher orquestra cache -> rede -> cache velho -> lista fixa
type Fetcher struct {
	Source Source
	Cache  Cache
	MaxAge time.Duration
	Now    func() time.Time
	Log    *zap.Logger

	OnOutcome func(outcome string) // métricas
}

func NewFetcher(src Source, cache Cache, log *zap.Logger) *Fetcher {
	return &Fetcher{
		Source: src,
		Cache:  cache,
		MaxAge: DefaultMaxAge,
		Now:    time.Now,
		Log:    log,
	}
}

// Upcoming nunca falha: sempre devolve alguma lista, no pior caso a fixa.
// Faz no máximo uma chamada de rede por invocação, sem retry.
func (f *Fetcher) Upcoming(ctx context.Context) []Match {
	now := f.Now()

	entry, err := f.Cache.Load(ctx)
	if err != nil {
		f.Log.Warn("match cache read failed", zap.Error(err))
		entry = nil
	}
	if entry != nil && entry.Age(now) < f.maxAge() {
		f.Log.Debug("using cached matches", zap.Int("count", len(entry.Matches)))
		f.report(OutcomeCacheHit)
		return entry.Matches
	}

	raws, err := f.Source.SeriesMatches(ctx)
	if err != nil {
		f.Log.Warn("match source failed", zap.Error(err))
	} else if upcoming := SelectUpcoming(raws); len(upcoming) > 0 {
		fresh := CacheEntry{Timestamp: now.UnixMilli(), Matches: upcoming}
		if err := f.Cache.Store(ctx, fresh); err != nil {
			f.Log.Warn("match cache write failed", zap.Error(err))
		}
		f.report(OutcomeFetched)
		return upcoming
	} else {
		f.Log.Info("match source returned no upcoming matches", zap.Int("raw_count", len(raws)))
	}

	if entry != nil {
		f.Log.Info("serving expired match cache", zap.Duration("age", entry.Age(now)))
		f.report(OutcomeStaleCache)
		return entry.Matches
	}

	f.Log.Info("serving fallback matches")
	f.report(OutcomeFallback)
	return Fallback()
}

func (f *Fetcher) maxAge() time.Duration {
	if f.MaxAge <= 0 {
		return DefaultMaxAge
	}
	return f.MaxAge
}

func (f *Fetcher) report(outcome string) {
	if f.OnOutcome != nil {
		f.OnOutcome(outcome)
	}
}
