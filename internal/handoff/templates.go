package handoff

import (
	"fmt"

	"fishbill/internal/billing/models"
	"fishbill/internal/document"
	"fishbill/pkg/money"
)

// Business identifies the issuer in outgoing messages.
type Business struct {
	Name    string
	Contact string
	Tagline string
}

// Templates renders the three message projections of a finalized
// transaction. Pure string substitution; the only branch is the
// pending/cleared line in the owner report.
type Templates struct {
	business Business
}

func NewTemplates(business Business) *Templates {
	return &Templates{business: business}
}

// Summary is the short internal message that gets copied to the clipboard
// and embedded in the WhatsApp link. It names the PDF so the sender can
// attach it by hand; the messaging link itself carries text only.
func (t *Templates) Summary(tx *models.Transaction) string {
	return fmt.Sprintf(`🐟 Fish Bill - %s

Customer: %s
Item: %s (%s kg @ %s/kg)
Amount: %s
Paid: %s
Balance: %s

📎 PDF bill saved as %s - attach it from your downloads

%s
%s`,
		tx.DateString(),
		tx.PartyName,
		tx.Item, tx.Quantity.String(), money.Rupees(tx.Rate),
		money.Rupees(tx.Amount),
		money.Rupees(tx.Payment),
		money.Rupees(tx.Remaining),
		document.Filename(tx.PartyName, tx.Date),
		t.business.Name,
		t.business.Contact,
	)
}

// Customer is the message forwarded to the buyer.
func (t *Templates) Customer(tx *models.Transaction) string {
	return fmt.Sprintf(`🐟 *Fish Bill - %s*

Dear %s,

Thank you for your purchase! Here are your bill details:

*Purchase Details:*
🐠 Item: %s
⚖️ Quantity: %s kg
💰 Rate: %s/kg
💳 Total Amount: %s

*Payment Summary:*
💸 Paid Today: %s
🏦 Previous Balance: %s
🔢 Remaining Balance: %s

📞 Thank you for your business!
*%s*
Contact: %s

_%s_`,
		tx.DateString(),
		tx.PartyName,
		tx.Item,
		tx.Quantity.String(),
		money.Rupees(tx.Rate),
		money.Rupees(tx.Amount),
		money.Rupees(tx.Payment),
		money.Rupees(tx.PriorBalance),
		money.Rupees(tx.Remaining),
		t.business.Name,
		t.business.Contact,
		t.business.Tagline,
	)
}

// OwnerReport is the owner's copy. The last line flips between a pending
// warning and a cleared confirmation on the sign of the remaining balance.
func (t *Templates) OwnerReport(tx *models.Transaction) string {
	balanceLine := "✅ *ACCOUNT CLEARED*"
	if tx.Status == models.StatusOwed {
		balanceLine = fmt.Sprintf("⚠️ *PENDING BALANCE: %s*", money.Rupees(tx.Remaining))
	}

	return fmt.Sprintf(`📊 *SALE REPORT - %s*

*Transaction Details:*
👤 Customer: %s
🐠 Item: %s
⚖️ Quantity: %s kg
💰 Rate: %s/kg

*Financial Summary:*
💳 Sale Amount: %s
💸 Payment Received: %s
🏦 Previous Balance: %s
🔢 New Balance: %s

%s

*%s - Owner Copy*`,
		tx.DateString(),
		tx.PartyName,
		tx.Item,
		tx.Quantity.String(),
		money.Rupees(tx.Rate),
		money.Rupees(tx.Amount),
		money.Rupees(tx.Payment),
		money.Rupees(tx.PriorBalance),
		money.Rupees(tx.Remaining),
		balanceLine,
		t.business.Name,
	)
}
