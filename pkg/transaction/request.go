package transaction

import "github.com/go-playground/validator/v10"

// Request is the input DTO a caller builds before submitting a
// transaction to the engine, validated via struct tags before it
// crosses into domain construction.
type Request struct {
	ID         string  `validate:"required"`
	Type       Type    `validate:"required,oneof=payment refund authorization capture void"`
	Amount     float64 `validate:"gte=0"`
	Currency   string  `validate:"required"`
	CardToken  string
	MerchantID string `validate:"required"`
}

var validate = validator.New()

// Validate runs struct-tag validation over r and returns the first
// validation error, if any.
func (r Request) Validate() error {
	return validate.Struct(r)
}

// ToTransaction builds a new Transaction from a validated Request.
// Callers should call Validate first; ToTransaction does not
// re-validate.
func (r Request) ToTransaction() *Transaction {
	return New(r.ID, r.Type, r.Amount, r.Currency, r.CardToken, r.MerchantID)
}
