// Package validate is the gate every draft bill passes before derivation
// output may be finalized. The gate is binary per call: it returns the first
// failing rule as a coded, field-tagged domain error, or the parsed inputs.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fishbill/internal/billing/models"
	dErrors "fishbill/pkg/domain-errors"
	"fishbill/pkg/money"
)

// requiredFields are checked in form order before any numeric rule runs, so
// a blank quantity reports missing_field rather than invalid_quantity_or_rate.
var requiredFields = []struct {
	field string
	label string
	value func(d models.DraftBill) string
}{
	{"party_name", "Customer Name", func(d models.DraftBill) string { return d.PartyName }},
	{"item", "Item", func(d models.DraftBill) string { return d.Item }},
	{"quantity", "Quantity", func(d models.DraftBill) string { return d.Quantity }},
	{"rate", "Rate", func(d models.DraftBill) string { return d.Rate }},
	{"payment", "Payment Made", func(d models.DraftBill) string { return d.Payment }},
	{"issuer_contact", "Owner Phone Number", func(d models.DraftBill) string { return d.IssuerContact }},
}

// Checked carries the parsed numeric and date fields of a draft that passed
// the gate.
type Checked struct {
	Quantity decimal.Decimal
	Rate     decimal.Decimal
	Payment  decimal.Decimal
	Date     time.Time
}

// Gate validates draft bills against a fixed country-code phone rule.
type Gate struct {
	countryCode string
	contactRe   *regexp.Regexp
	now         func() time.Time
}

type Option func(*Gate)

// WithClock overrides the default-date clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// NewGate builds a gate requiring issuer contacts of the form
// +<countryCode> followed by exactly ten digits.
func NewGate(countryCode string, opts ...Option) *Gate {
	g := &Gate{
		countryCode: countryCode,
		contactRe:   regexp.MustCompile(`^\+` + regexp.QuoteMeta(countryCode) + `[0-9]{10}$`),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check applies the rules in order and short-circuits on the first failure:
// required fields, quantity > 0, rate > 0, issuer contact format. On
// success it returns the parsed inputs the derivation engine consumes.
func (g *Gate) Check(draft models.DraftBill) (*Checked, error) {
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.value(draft)) == "" {
			return nil, dErrors.NewField(dErrors.CodeMissingField, rf.field,
				fmt.Sprintf("please fill in %s", rf.label))
		}
	}

	quantity, err := money.Parse(draft.Quantity)
	if err != nil {
		return nil, dErrors.NewField(dErrors.CodeInvalidQuantityOrRate, "quantity",
			"quantity must be a number")
	}
	if quantity.Sign() <= 0 {
		return nil, dErrors.NewField(dErrors.CodeInvalidQuantityOrRate, "quantity",
			"quantity must be greater than 0")
	}

	rate, err := money.Parse(draft.Rate)
	if err != nil {
		return nil, dErrors.NewField(dErrors.CodeInvalidQuantityOrRate, "rate",
			"rate must be a number")
	}
	if rate.Sign() <= 0 {
		return nil, dErrors.NewField(dErrors.CodeInvalidQuantityOrRate, "rate",
			"rate must be greater than 0")
	}

	payment, err := money.Parse(draft.Payment)
	if err != nil {
		return nil, dErrors.NewField(dErrors.CodeInvalidQuantityOrRate, "payment",
			"payment must be a number")
	}
	if payment.Sign() < 0 {
		return nil, dErrors.NewField(dErrors.CodeInvalidQuantityOrRate, "payment",
			"payment cannot be negative")
	}

	if !g.contactRe.MatchString(strings.TrimSpace(draft.IssuerContact)) {
		return nil, dErrors.NewField(dErrors.CodeInvalidContactFormat, "issuer_contact",
			fmt.Sprintf("owner phone number must be in format +%sXXXXXXXXXX", g.countryCode))
	}

	date := g.now()
	if strings.TrimSpace(draft.Date) != "" {
		date, err = time.Parse("2006-01-02", strings.TrimSpace(draft.Date))
		if err != nil {
			return nil, dErrors.NewField(dErrors.CodeBadRequest, "date",
				"date must be in format YYYY-MM-DD")
		}
	}

	return &Checked{Quantity: quantity, Rate: rate, Payment: payment, Date: date}, nil
}
