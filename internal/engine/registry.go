package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Ytemiloluwa/paycore/pkg/transaction"
)

// Handler advances a transaction from Processing to a terminal
// status by calling t.Complete with the outcome it decides on. It
// must not call t.MarkProcessing or otherwise rewind status.
type Handler func(t *transaction.Transaction)

// ProcessorRegistry is a thread-safe, upsert-only mapping from
// processor id to Handler.
type ProcessorRegistry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewProcessorRegistry returns a registry pre-populated with
// "default-processor", "visa-processor", and "mastercard-processor",
// three illustrative handlers standing in for real processor
// integrations.
func NewProcessorRegistry() *ProcessorRegistry {
	r := &ProcessorRegistry{handlers: make(map[string]Handler)}
	r.Register(DefaultProcessorID, defaultProcessorHandler)
	r.Register("visa-processor", visaProcessorHandler)
	r.Register("mastercard-processor", mastercardProcessorHandler)
	return r
}

// Register upserts a handler under id. Safe to call before or after
// Engine.Start; a handler registered mid-flight is only guaranteed
// visible to transactions dispatched after the call returns.
func (r *ProcessorRegistry) Register(id string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[id] = handler
}

// Lookup returns the handler for id, falling back to
// "default-processor" if id is absent. The second return value is
// false only when neither id nor the default is registered.
func (r *ProcessorRegistry) Lookup(id string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.handlers[id]; ok {
		return h, true
	}
	h, ok := r.handlers[DefaultProcessorID]
	return h, ok
}

// handlerRand backs the illustrative processors' sleep jitter and
// approval rolls. It is a plain PRNG, not a CSPRNG: these handlers
// simulate a payment network round-trip, not a security decision.
var (
	handlerRandMu sync.Mutex
	handlerRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func jitterSleep(minMS, maxMS int) {
	handlerRandMu.Lock()
	d := minMS + handlerRand.Intn(maxMS-minMS+1)
	handlerRandMu.Unlock()
	time.Sleep(time.Duration(d) * time.Millisecond)
}

func rollApproved(probability float64) bool {
	handlerRandMu.Lock()
	defer handlerRandMu.Unlock()
	return handlerRand.Float64() < probability
}

func defaultProcessorHandler(t *transaction.Transaction) {
	jitterSleep(50, 250)
	if t.Amount() < 10000 {
		t.Complete(transaction.Approved, "00", "Approved")
		return
	}
	t.Complete(transaction.Declined, "51", "Insufficient funds")
}

func visaProcessorHandler(t *transaction.Transaction) {
	jitterSleep(30, 130)
	if rollApproved(0.95) {
		t.Complete(transaction.Approved, "00", "Approved by Visa")
		return
	}
	t.Complete(transaction.Declined, "05", "Do not honor")
}

func mastercardProcessorHandler(t *transaction.Transaction) {
	jitterSleep(40, 190)
	if rollApproved(0.92) {
		t.Complete(transaction.Approved, "00", "Approved by Mastercard")
		return
	}
	t.Complete(transaction.Declined, "54", "Expired card")
}
