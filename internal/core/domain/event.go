package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventKind discriminates the two event variants in the ledger.
type EventKind string

const (
	KindDeposit       EventKind = "DEPOSIT"
	KindAuthorization EventKind = "AUTHORIZATION"
)

// Direction marks which side of the ledger an amount moves.
type Direction string

const (
	Credit Direction = "CREDIT"
	Debit  Direction = "DEBIT"
)

// Decision is the outcome recorded on an authorization, fixed at creation.
type Decision string

const (
	Approved Decision = "APPROVED"
	Declined Decision = "DECLINED"
)

// Event is one immutable entry in an account's ledger.
// Deposits are always CREDIT; authorizations are always DEBIT and carry
// the decision that was made against the balance at creation time.
type Event struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountId"`
	Kind      EventKind       `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Direction Direction       `json:"direction"`
	Decision  Decision        `json:"decision,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewDeposit creates a CREDIT event. The timestamp is set here, at creation.
func NewDeposit(accountID string, amount decimal.Decimal, currency string) Event {
	return Event{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Kind:      KindDeposit,
		Amount:    amount,
		Currency:  currency,
		Direction: Credit,
		CreatedAt: time.Now(),
	}
}

// NewAuthorization creates a DEBIT event carrying the approve/decline outcome.
func NewAuthorization(accountID string, amount decimal.Decimal, currency string, decision Decision) Event {
	return Event{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Kind:      KindAuthorization,
		Amount:    amount,
		Currency:  currency,
		Direction: Debit,
		Decision:  decision,
		CreatedAt: time.Now(),
	}
}
