package engine

import (
	"sync"
	"time"

	"github.com/Ytemiloluwa/paycore/pkg/transaction"
)

// BatchAccumulator buffers transactions not yet submitted to an
// Engine and flushes them either on a timer or on demand. It holds
// its own mutex, independent of the engine's.
type BatchAccumulator struct {
	engine *Engine

	mu       sync.Mutex
	pending  []*transaction.Transaction
	interval time.Duration

	runMu   sync.Mutex
	running bool
	stopCh  chan struct{}
	done    chan struct{}
}

// NewBatchAccumulator returns an accumulator that flushes onto engine,
// with a default auto-batch interval of 30s.
func NewBatchAccumulator(engine *Engine) *BatchAccumulator {
	return &BatchAccumulator{
		engine:   engine,
		interval: 30 * time.Second,
	}
}

// AddToBatch appends t to the pending list under lock.
func (b *BatchAccumulator) AddToBatch(t *transaction.Transaction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, t)
}

// GetBatchSize returns the current pending count under lock.
func (b *BatchAccumulator) GetBatchSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// ProcessBatchNow submits every accumulated transaction to the engine
// and clears the list, all under the accumulator's lock. The lock is
// held across SubmitTransaction deliberately — safe only because
// SubmitTransaction never reaches back into accumulator state.
func (b *BatchAccumulator) ProcessBatchNow() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range b.pending {
		b.engine.SubmitTransaction(t)
	}
	b.pending = nil
}

// SetAutoBatchInterval updates the flush cadence; it applies to
// subsequent waits, not one already in progress.
func (b *BatchAccumulator) SetAutoBatchInterval(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interval = d
}

func (b *BatchAccumulator) currentInterval() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.interval
}

// Start is idempotent: if already running it returns immediately,
// otherwise it spawns a single scheduler goroutine that flushes every
// interval until Stop is called.
func (b *BatchAccumulator) Start() {
	b.runMu.Lock()
	defer b.runMu.Unlock()
	if b.running {
		return
	}
	b.running = true
	b.stopCh = make(chan struct{})
	b.done = make(chan struct{})

	go b.scheduleLoop(b.stopCh, b.done)
}

// Stop is idempotent: it signals the scheduler goroutine to exit and
// waits for it to do so.
func (b *BatchAccumulator) Stop() {
	b.runMu.Lock()
	if !b.running {
		b.runMu.Unlock()
		return
	}
	b.running = false
	stopCh := b.stopCh
	done := b.done
	b.runMu.Unlock()

	close(stopCh)
	<-done
}

// scheduleLoop ticks up to the configured interval (re-read on every
// iteration so SetAutoBatchInterval takes effect on the next wait)
// and either exits on stop or flushes via ProcessBatchNow.
func (b *BatchAccumulator) scheduleLoop(stopCh, done chan struct{}) {
	defer close(done)
	for {
		timer := time.NewTimer(b.currentInterval())
		select {
		case <-stopCh:
			timer.Stop()
			return
		case <-timer.C:
			b.ProcessBatchNow()
		}
	}
}
