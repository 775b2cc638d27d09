package transaction_test

import (
	"testing"

	"github.com/Ytemiloluwa/paycore/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	valid := transaction.Request{
		ID:         "tx-1",
		Type:       transaction.Payment,
		Amount:     50.0,
		Currency:   "USD",
		CardToken:  "visa-xxx",
		MerchantID: "merchant-1",
	}
	require.NoError(t, valid.Validate())

	tx := valid.ToTransaction()
	assert.Equal(t, "tx-1", tx.ID())
}

func TestRequest_Validate_Invalid(t *testing.T) {
	tests := []transaction.Request{
		{Type: transaction.Payment, Amount: 1, Currency: "USD", MerchantID: "m"},            // missing ID
		{ID: "tx", Type: "bogus", Amount: 1, Currency: "USD", MerchantID: "m"},               // bad type
		{ID: "tx", Type: transaction.Payment, Amount: -1, Currency: "USD", MerchantID: "m"},   // negative amount
		{ID: "tx", Type: transaction.Payment, Amount: 1, Currency: "", MerchantID: "m"},       // missing currency
		{ID: "tx", Type: transaction.Payment, Amount: 1, Currency: "USD", MerchantID: ""},     // missing merchant
	}

	for _, req := range tests {
		assert.Error(t, req.Validate())
	}
}
