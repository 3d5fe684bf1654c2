package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceStatus drives the cleared/owed presentation of a bill.
type BalanceStatus string

const (
	StatusCleared BalanceStatus = "CLEARED"
	StatusOwed    BalanceStatus = "OWED"
)

// DraftBill is the raw form submission before the validation gate has seen
// it. Numeric fields stay strings so the gate can distinguish "left blank"
// from "filled in with garbage": blank is a missing-field error, garbage is
// an invalid-number error, and the two must not be conflated.
type DraftBill struct {
	PartyName     string `json:"party_name"`
	Item          string `json:"item"`
	Quantity      string `json:"quantity"`
	Rate          string `json:"rate"`
	Payment       string `json:"payment"`
	Date          string `json:"date"`
	IssuerName    string `json:"issuer_name"`
	IssuerContact string `json:"issuer_contact"`
}

// Transaction is one finalized sale. Created once per accepted submission,
// never mutated afterwards; a new submission produces a new Transaction.
//
// Invariants:
//   - Amount == round2(Quantity * Rate)
//   - Remaining == round2(PriorBalance + Amount - Payment)
//   - Status is OWED iff Remaining > 0
//   - PriorBalance is the party's balance snapshot at selection time; the
//     catalog is never written back
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	PartyName     string          `json:"party_name"`
	PartyContact  string          `json:"party_contact"`
	Item          string          `json:"item"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	Payment       decimal.Decimal `json:"payment"`
	PriorBalance  decimal.Decimal `json:"prior_balance"`
	Remaining     decimal.Decimal `json:"remaining_balance"`
	Status        BalanceStatus   `json:"status"`
	Date          time.Time       `json:"date"`
	IssuerName    string          `json:"issuer_name"`
	IssuerContact string          `json:"issuer_contact"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DateString renders the bill date the way filenames and messages need it.
func (t *Transaction) DateString() string {
	return t.Date.Format("2006-01-02")
}
