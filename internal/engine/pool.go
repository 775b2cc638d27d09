// Package engine implements the concurrent transaction execution
// engine: a producer/consumer work queue, a processor registry and
// routing table, a bounded worker pool with cooperative shutdown, and
// a batch accumulator that resubmits onto the same submission
// surface.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Ytemiloluwa/paycore/pkg/logging"
	"github.com/Ytemiloluwa/paycore/pkg/transaction"
	"github.com/google/uuid"
)

// Engine owns the pending queue, router, processor registry, result
// store, and the N worker goroutines that drain the queue.
type Engine struct {
	queue    *TransactionQueue
	router   *Router
	registry *ProcessorRegistry
	logger   *slog.Logger

	workerCount    int
	dequeueTimeout time.Duration

	resultsMu sync.RWMutex
	results   map[string]*transaction.Transaction

	runMu   sync.Mutex
	running bool
	wg      sync.WaitGroup
}

// Option customizes a new Engine.
type Option func(*Engine)

// WithWorkerCount overrides the default worker count of 4.
func WithWorkerCount(n int) Option {
	return func(e *Engine) { e.workerCount = n }
}

// WithDequeueTimeout overrides the default ~100ms dequeue poll.
func WithDequeueTimeout(d time.Duration) Option {
	return func(e *Engine) { e.dequeueTimeout = d }
}

// WithLogger overrides the engine's logger; New defaults to a
// discarding logger if none is supplied.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New constructs an Engine with a fresh queue, router, and processor
// registry (pre-populated with the three illustrative handlers).
// Worker count defaults to 4.
func New(opts ...Option) *Engine {
	e := &Engine{
		queue:          NewTransactionQueue(),
		router:         NewRouter(),
		registry:       NewProcessorRegistry(),
		results:        make(map[string]*transaction.Transaction),
		workerCount:    4,
		dequeueTimeout: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	// Tag every log line from this engine instance with a correlation
	// id — useful once multiple engines run in the same process.
	e.logger = e.logger.With("engine_id", uuid.NewString())
	return e
}

// Router exposes the engine's routing table for route configuration.
func (e *Engine) Router() *Router { return e.router }

// Registry exposes the engine's processor registry for registration.
func (e *Engine) Registry() *ProcessorRegistry { return e.registry }

// Start is idempotent: if already running it returns immediately,
// otherwise it spawns workerCount worker goroutines and marks the
// engine running.
func (e *Engine) Start() {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	if e.running {
		return
	}
	e.running = true

	for i := 0; i < e.workerCount; i++ {
		e.wg.Add(1)
		go e.workerLoop()
	}
}

// Stop is idempotent: it flips the running flag and waits for every
// worker goroutine to exit. Transactions still queued when Stop is
// called are discarded with no guarantee of reaching a terminal
// state.
func (e *Engine) Stop() {
	e.runMu.Lock()
	if !e.running {
		e.runMu.Unlock()
		return
	}
	e.running = false
	e.runMu.Unlock()

	e.wg.Wait()
}

func (e *Engine) isRunning() bool {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	return e.running
}

func (e *Engine) workerLoop() {
	defer e.wg.Done()
	for e.isRunning() {
		t, ok := e.queue.Dequeue(e.dequeueTimeout)
		if !ok {
			continue
		}
		e.process(t)
	}
}

// process dispatches t through the router and registry, invokes the
// resolved handler with panic recovery, and publishes the result
// regardless of outcome so no transaction is lost.
func (e *Engine) process(t *transaction.Transaction) {
	t.MarkProcessing()

	processorID := e.router.ProcessorFor(t)
	handler, ok := e.registry.Lookup(processorID)
	if !ok {
		t.Complete(transaction.Error, "96", "no processor registered")
		e.publish(t)
		return
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("panic recovered in processor handler",
					"transaction_id", t.ID(), "processor_id", processorID, "panic", r)
				t.Complete(transaction.Error, "96", "handler panic")
			}
		}()
		handler(t)
	}()

	e.publish(t)
}

func (e *Engine) publish(t *transaction.Transaction) {
	e.resultsMu.Lock()
	e.results[t.ID()] = t
	e.resultsMu.Unlock()
}

// SubmitTransaction enqueues t onto the pending queue without
// blocking.
func (e *Engine) SubmitTransaction(t *transaction.Transaction) {
	e.queue.Enqueue(t)
}

// GetTransactionStatus returns the stored transaction's status if
// present, otherwise transaction.Pending.
func (e *Engine) GetTransactionStatus(id string) transaction.Status {
	e.resultsMu.RLock()
	defer e.resultsMu.RUnlock()
	if t, ok := e.results[id]; ok {
		return t.Status()
	}
	return transaction.Pending
}

// GetTransactionResult returns the stored transaction if present,
// otherwise the sentinel empty transaction.
func (e *Engine) GetTransactionResult(id string) *transaction.Transaction {
	e.resultsMu.RLock()
	defer e.resultsMu.RUnlock()
	if t, ok := e.results[id]; ok {
		return t
	}
	return transaction.Empty()
}
