package engine_test

import (
	"testing"

	"github.com/Ytemiloluwa/paycore/internal/engine"
	"github.com/Ytemiloluwa/paycore/pkg/transaction"
	"github.com/stretchr/testify/assert"
)

func TestRouter_CurrencyBeatsBrand(t *testing.T) {
	r := engine.NewRouter()
	r.AddCurrencyRoute("EUR", "european-processor")
	r.AddCardBrandRoute("visa", "visa-processor")

	tx := transaction.New("tx-1", transaction.Payment, 10, "EUR", "visa-xxx", "m-1")
	assert.Equal(t, "european-processor", r.ProcessorFor(tx))
}

func TestRouter_BrandFallbackWhenNoCurrencyMatch(t *testing.T) {
	r := engine.NewRouter()
	r.AddCardBrandRoute("mastercard", "mc-processor")

	tx := transaction.New("tx-2", transaction.Payment, 10, "GBP", "mc-xxx", "m-1")
	assert.Equal(t, "mc-processor", r.ProcessorFor(tx))
}

func TestRouter_DefaultWhenNothingMatches(t *testing.T) {
	r := engine.NewRouter()
	tx := transaction.New("tx-3", transaction.Payment, 10, "USD", "unknown-xxx", "m-1")
	assert.Equal(t, engine.DefaultProcessorID, r.ProcessorFor(tx))
}

func TestRouter_BrandInference(t *testing.T) {
	r := engine.NewRouter()
	r.AddCardBrandRoute("visa", "p-visa")
	r.AddCardBrandRoute("mastercard", "p-mc")
	r.AddCardBrandRoute("amex", "p-amex")
	r.AddCardBrandRoute("unknown", "p-unknown")

	cases := []struct {
		cardToken string
		want      string
	}{
		{"visa-1234", "p-visa"},
		{"mc-5678", "p-mc"},
		{"amex-9999", "p-amex"},
		{"discover-0000", "p-unknown"},
	}

	for _, c := range cases {
		tx := transaction.New("tx", transaction.Payment, 1, "ZZZ", c.cardToken, "m")
		assert.Equal(t, c.want, r.ProcessorFor(tx))
	}
}
