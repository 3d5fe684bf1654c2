// Package derive holds the pure bookkeeping functions of the billing flow.
// Everything here is deterministic over its inputs; all rounding is to two
// decimal places.
package derive

import (
	"github.com/shopspring/decimal"

	"fishbill/internal/billing/models"
	"fishbill/pkg/money"
)

// Amount computes the line total for a quantity at a unit rate.
func Amount(quantity, rate decimal.Decimal) decimal.Decimal {
	return money.Round2(quantity.Mul(rate))
}

// Remaining computes the balance carried forward: prior balance plus this
// sale's amount minus the payment received.
func Remaining(priorBalance, amount, payment decimal.Decimal) decimal.Decimal {
	return money.Round2(priorBalance.Add(amount).Sub(payment))
}

// StatusFor maps a remaining balance onto the cleared/owed presentation:
// anything at or below zero counts as cleared.
func StatusFor(remaining decimal.Decimal) models.BalanceStatus {
	if remaining.Sign() > 0 {
		return models.StatusOwed
	}
	return models.StatusCleared
}
