package engine

import (
	"strings"
	"sync"

	"github.com/Ytemiloluwa/paycore/pkg/transaction"
)

// DefaultProcessorID is returned by Router.ProcessorFor when neither
// the currency table nor the brand table matches.
const DefaultProcessorID = "default-processor"

// Router maps a transaction to the id of a processor handler: currency
// first, extracted card brand second, DefaultProcessorID last. Both
// tables share one RWMutex, so a lookup sees a consistent view of both;
// a write to either table waits for in-progress lookups.
type Router struct {
	mu       sync.RWMutex
	currency map[string]string
	brand    map[string]string
}

// NewRouter returns a Router with empty tables.
func NewRouter() *Router {
	return &Router{
		currency: make(map[string]string),
		brand:    make(map[string]string),
	}
}

// AddCurrencyRoute upserts a currency → processor id association.
func (r *Router) AddCurrencyRoute(currency, processorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currency[currency] = processorID
}

// AddCardBrandRoute upserts a card-brand → processor id association.
func (r *Router) AddCardBrandRoute(brand, processorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brand[brand] = processorID
}

// ProcessorFor resolves the processor id for t: currency table first,
// then the brand table keyed by the brand inferred from t's card
// token, then DefaultProcessorID.
func (r *Router) ProcessorFor(t *transaction.Transaction) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.currency[t.Currency()]; ok {
		return id
	}
	if id, ok := r.brand[inferBrand(t.CardToken())]; ok {
		return id
	}
	return DefaultProcessorID
}

// inferBrand is a case-sensitive substring probe over a card token:
// "visa" → "visa", "mc" → "mastercard", "amex" → "amex", else
// "unknown". This is deliberately distinct from pkg/pan.DetectBrand,
// which reads PAN prefixes rather than opaque card tokens.
func inferBrand(cardToken string) string {
	switch {
	case strings.Contains(cardToken, "visa"):
		return "visa"
	case strings.Contains(cardToken, "mc"):
		return "mastercard"
	case strings.Contains(cardToken, "amex"):
		return "amex"
	default:
		return "unknown"
	}
}
