// Package transaction defines the payment transaction value object:
// its identity fields, its mutable result envelope, and the status
// DAG the engine advances it through.
//
// Amount is stored internally as an integer count of the currency's
// smallest unit (cents). Currency is accepted as a free-form string,
// deliberately unvalidated: the router keys on whatever string the
// caller supplies, not a validated ISO-4217 code.
package transaction

import (
	"encoding/json"
	"math"
	"sync"
	"time"
)

// Type identifies the kind of payment instruction.
type Type string

const (
	Payment       Type = "payment"
	Refund        Type = "refund"
	Authorization Type = "authorization"
	Capture       Type = "capture"
	Void          Type = "void"
)

// Status is a transaction's position in the engine's state machine.
type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Approved   Status = "approved"
	Declined   Status = "declined"
	Error      Status = "error"
	Timeout    Status = "timeout"
)

// terminal reports whether s is one of the DAG's sink states.
func (s Status) terminal() bool {
	switch s {
	case Approved, Declined, Error, Timeout:
		return true
	default:
		return false
	}
}

// Transaction is an identity and request descriptor plus a response
// envelope. Identity fields (ID, Type, Amount, Currency, CardToken,
// MerchantID, CreatedAt) are set at construction and never change;
// the response envelope (Status, ProcessedAt, ResponseCode,
// ResponseMessage) is mutated by the engine as the transaction
// advances. A mutex guards the envelope so a caller reading status
// concurrently with a worker writing it never observes a torn update.
type Transaction struct {
	id         string
	typ        Type
	amountCent int64
	currency   string
	cardToken  string
	merchantID string
	createdAt  time.Time

	mu              sync.Mutex
	status          Status
	processedAt     time.Time
	hasProcessedAt  bool
	responseCode    string
	responseMessage string
}

// New constructs a Transaction with status Pending and no
// processed_at. amount is the display amount (e.g. 19.99) and is
// rounded to two fractional digits before being stored as cents.
func New(id string, typ Type, amount float64, currency, cardToken, merchantID string) *Transaction {
	return &Transaction{
		id:         id,
		typ:        typ,
		amountCent: toCents(amount),
		currency:   currency,
		cardToken:  cardToken,
		merchantID: merchantID,
		createdAt:  time.Now().UTC(),
		status:     Pending,
	}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (t *Transaction) ID() string         { return t.id }
func (t *Transaction) Type() Type         { return t.typ }
func (t *Transaction) Currency() string   { return t.currency }
func (t *Transaction) CardToken() string  { return t.cardToken }
func (t *Transaction) MerchantID() string { return t.merchantID }
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// Amount returns the display amount with two-digit precision.
func (t *Transaction) Amount() float64 {
	return float64(t.amountCent) / 100
}

// Status returns the current status under lock.
func (t *Transaction) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// ProcessedAt returns the processed timestamp and whether it has been
// set; it is undefined while status is Pending or Processing.
func (t *Transaction) ProcessedAt() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.processedAt, t.hasProcessedAt
}

// ResponseCode and ResponseMessage are empty until a terminal status.
func (t *Transaction) ResponseCode() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.responseCode
}

func (t *Transaction) ResponseMessage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.responseMessage
}

// MarkProcessing advances status from Pending to Processing. It is a
// no-op if the transaction is already past Pending: the status DAG
// never moves backward.
func (t *Transaction) MarkProcessing() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status == Pending {
		t.status = Processing
	}
}

// Complete stamps the terminal result: status, response code and
// message, and processed_at (the current wall-clock time, always
// >= CreatedAt). A later call overwrites the fields it sets; the
// result store does not enforce idempotency.
func (t *Transaction) Complete(status Status, code, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	t.responseCode = code
	t.responseMessage = message
	t.processedAt = time.Now().UTC()
	t.hasProcessedAt = true
}

// Snapshot is an immutable, JSON-serializable copy of a Transaction at
// a point in time, used for diagnostics and JSON output. The engine's
// result lookup returns the live *Transaction, not a Snapshot.
type Snapshot struct {
	ID              string  `json:"id"`
	Type            Type    `json:"type"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	CardToken       string  `json:"card_token"`
	MerchantID      string  `json:"merchant_id"`
	Status          Status  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ProcessedAt     *string `json:"processed_at"`
	ResponseCode    *string `json:"response_code"`
	ResponseMessage *string `json:"response_message"`
}

// Snapshot copies the transaction's current state into a Snapshot
// suitable for json.Marshal. processed_at, response_code, and
// response_message are null while status is Pending or Processing,
// and are real (possibly empty) strings once terminal. Timestamps are
// formatted in UTC RFC3339.
func (t *Transaction) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		ID:         t.id,
		Type:       t.typ,
		Amount:     float64(t.amountCent) / 100,
		Currency:   t.currency,
		CardToken:  t.cardToken,
		MerchantID: t.merchantID,
		Status:     t.status,
		CreatedAt:  t.createdAt.Format(time.RFC3339),
	}

	if t.status.terminal() {
		processed := t.processedAt.Format(time.RFC3339)
		code := t.responseCode
		msg := t.responseMessage
		s.ProcessedAt = &processed
		s.ResponseCode = &code
		s.ResponseMessage = &msg
	}

	return s
}

// MarshalJSON implements json.Marshaler via Snapshot.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Snapshot())
}

// Empty is the sentinel Transaction returned by result lookups for an
// unknown id: empty id, type Payment, amount 0, and empty
// currency/token/merchant.
func Empty() *Transaction {
	return New("", Payment, 0, "", "", "")
}
