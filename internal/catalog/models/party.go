package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dErrors "fishbill/pkg/domain-errors"
)

// Party is a known counterparty: a customer with a running balance and a
// WhatsApp-reachable contact number.
//
// Invariants:
//   - Name is non-empty and unique (case-insensitive) within the catalog
//   - Balance is the running balance at last settlement; it may be negative
//     when the party is in credit
//
// Within one billing session a Party is immutable reference data: the bill
// takes a balance snapshot at selection time and never writes back.
type Party struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Contact   string          `json:"contact"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewParty validates the unique-key invariant locally; uniqueness across the
// catalog is enforced by the store.
func NewParty(name, contact string, balance decimal.Decimal, now time.Time) (*Party, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "party name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "party name must be 128 characters or less")
	}
	return &Party{
		ID:        uuid.New(),
		Name:      name,
		Balance:   balance,
		Contact:   contact,
		CreatedAt: now,
	}, nil
}
