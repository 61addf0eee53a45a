package match

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Refresher mantém o snapshot servido pela API e o renova periodicamente.
// Refreshes sobrepostos não são serializados: vence o último a terminar.
type Refresher struct {
	Fetcher  interface{ Upcoming(context.Context) []Match }
	Interval time.Duration
	Log      *zap.Logger

	mu      sync.RWMutex
	current []Match
}

func NewRefresher(f interface{ Upcoming(context.Context) []Match }, interval time.Duration, log *zap.Logger) *Refresher {
	return &Refresher{Fetcher: f, Interval: interval, Log: log}
}

// Refresh busca uma vez; lista vazia mantém o snapshot anterior
func (r *Refresher) Refresh(ctx context.Context) []Match {
	ms := r.Fetcher.Upcoming(ctx)
	if len(ms) == 0 {
		return r.Current()
	}
	r.mu.Lock()
	r.current = ms
	r.mu.Unlock()
	return ms
}

// Current devolve o snapshot atual (pode ser nil antes da primeira carga)
func (r *Refresher) Current() []Match {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Find procura uma partida pelo id no snapshot atual
func (r *Refresher) Find(id string) (Match, bool) {
	for _, m := range r.Current() {
		if m.ID == id {
			return m, true
		}
	}
	return Match{}, false
}

// Run carrega imediatamente e depois a cada Interval, até o contexto acabar
func (r *Refresher) Run(ctx context.Context) error {
	r.Refresh(ctx)
	r.Log.Info("matches loaded", zap.Int("count", len(r.Current())))

	interval := r.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			ms := r.Refresh(ctx)
			r.Log.Debug("matches refreshed", zap.Int("count", len(ms)))
		}
	}
}
