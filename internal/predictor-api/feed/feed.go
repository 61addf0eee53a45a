package feed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
)

// Lister lê o log completo de palpites
type Lister interface {
	ListPredictions(ctx context.Context) ([]account.Prediction, error)
}

// Signal avisa que o log mudou. O canal fecha quando ctx termina.
type Signal interface {
	Changes(ctx context.Context) (<-chan struct{}, error)
}

// DefaultRetryInterval é a espera entre tentativas de reinscrição no Signal
const DefaultRetryInterval = 5 * time.Second

// Feed entrega o log completo a cada mudança
type Feed struct {
	Lister Lister
	Signal Signal
	Log    *zap.Logger

	RetryInterval time.Duration // zero usa DefaultRetryInterval

	OnDelivered func(n int) // métricas
	OnError     func(stage string)
}

func New(l Lister, s Signal, log *zap.Logger) *Feed {
	return &Feed{Lister: l, Signal: s, Log: log}
}

// Subscribe entrega o log atual imediatamente e de novo a cada sinal de mudança,
// sempre ordenado do mais novo para o mais antigo. Erros viram lista vazia.
// Se o Signal falhar ou fechar, tenta de novo a cada RetryInterval.
//
// A função devolvida cancela a inscrição e só retorna depois que a goroutine
// terminou; nenhum callback acontece depois disso. Não chame de dentro do callback.
func (f *Feed) Subscribe(ctx context.Context, cb func([]account.Prediction)) (unsubscribe func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		failing := false
		for {
			changes, err := f.Signal.Changes(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				f.Log.Error("feed subscription failed", zap.Error(err), zap.Duration("retry_in", f.retryInterval()))
				f.fail("subscribe")
				// uma lista vazia por queda, não uma por tentativa
				if !failing {
					f.deliver(ctx, cb, []account.Prediction{})
					failing = true
				}
				if !sleep(ctx, f.retryInterval()) {
					return
				}
				continue
			}

			failing = false
			f.reload(ctx, cb)
			if !f.listen(ctx, changes, cb) {
				return
			}
			f.Log.Warn("feed signal closed, resubscribing", zap.Duration("retry_in", f.retryInterval()))
			if !sleep(ctx, f.retryInterval()) {
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

// listen recarrega a cada sinal. Devolve false quando ctx terminou e true
// quando o canal fechou antes disso.
func (f *Feed) listen(ctx context.Context, changes <-chan struct{}, cb func([]account.Prediction)) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-changes:
			if !ok {
				return ctx.Err() == nil
			}
			f.reload(ctx, cb)
		}
	}
}

func (f *Feed) retryInterval() time.Duration {
	if f.RetryInterval > 0 {
		return f.RetryInterval
	}
	return DefaultRetryInterval
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (f *Feed) reload(ctx context.Context, cb func([]account.Prediction)) {
	ps, err := f.Lister.ListPredictions(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		f.Log.Warn("feed list failed", zap.Error(err))
		f.fail("list")
		ps = []account.Prediction{}
	}
	account.SortNewestFirst(ps)
	f.deliver(ctx, cb, ps)
}

func (f *Feed) deliver(ctx context.Context, cb func([]account.Prediction), ps []account.Prediction) {
	if ctx.Err() != nil {
		return
	}
	cb(ps)
	if f.OnDelivered != nil {
		f.OnDelivered(len(ps))
	}
}

func (f *Feed) fail(stage string) {
	if f.OnError != nil {
		f.OnError(stage)
	}
}
