// Package document renders a finalized transaction into the printable PDF
// bill. The layout is a fixed template: every field has a fixed position and
// style, there is no conditional layout and no pagination beyond the single
// A4 page the field set needs.
package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"fishbill/internal/billing/models"
	dErrors "fishbill/pkg/domain-errors"
	"fishbill/pkg/money"
)

// Branding is the header/footer identity printed on every bill.
type Branding struct {
	Name    string
	Contact string
	Email   string
	Tagline string
}

// Document is the rendered artifact plus its deterministic filename.
type Document struct {
	Bytes    []byte
	Filename string
}

// Filename derives the download name for a bill. The party name is embedded
// as-is; dates are calendar dates.
func Filename(partyName string, date time.Time) string {
	return fmt.Sprintf("bill_%s_%s.pdf", partyName, date.Format("2006-01-02"))
}

// Assembler lays out bills for one business identity.
type Assembler struct {
	branding Branding
}

func NewAssembler(branding Branding) *Assembler {
	return &Assembler{branding: branding}
}

// Print palette.
var (
	colorBrand    = [3]int{37, 99, 235}
	colorMuted    = [3]int{100, 116, 139}
	colorHeading  = [3]int{30, 41, 59}
	colorBody     = [3]int{55, 65, 81}
	colorRule     = [3]int{226, 232, 240}
	colorFill     = [3]int{248, 250, 252}
	colorEmphasis = [3]int{220, 38, 38}
)

// Render produces the PDF. Any rendering-library error is caught here and
// surfaced as a render_failure domain error; no partial artifact escapes.
//
// Amounts are printed with an "Rs" prefix because the built-in PDF fonts
// carry no rupee glyph; the plain-text messages use the real sign.
func (a *Assembler) Render(tx *models.Transaction) (*Document, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Bill %s %s", tx.PartyName, tx.DateString()), true)
	pdf.AddPage()

	// Branding header.
	pdf.SetFont("Helvetica", "B", 20)
	setText(pdf, colorBrand)
	pdf.Text(20, 30, a.branding.Name)

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorMuted)
	pdf.Text(20, 40, fmt.Sprintf("Contact: %s | Email: %s", a.branding.Contact, a.branding.Email))

	pdf.SetDrawColor(colorRule[0], colorRule[1], colorRule[2])
	pdf.SetLineWidth(0.5)
	pdf.Line(20, 50, 190, 50)

	// Bill header with date on the right.
	pdf.SetFont("Helvetica", "B", 16)
	setText(pdf, colorHeading)
	pdf.Text(20, 65, "PURCHASE BILL")

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorMuted)
	pdf.Text(150, 65, "Date: "+tx.DateString())

	// Customer block.
	pdf.SetFont("Helvetica", "B", 12)
	setText(pdf, colorHeading)
	pdf.Text(20, 85, "CUSTOMER DETAILS")

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorBody)
	pdf.Text(20, 95, "Customer Name: "+tx.PartyName)

	// Single-row item table.
	const tableY = 110.0
	pdf.SetFillColor(colorFill[0], colorFill[1], colorFill[2])
	pdf.Rect(20, tableY, 170, 10, "F")

	pdf.SetFont("Helvetica", "B", 10)
	setText(pdf, colorHeading)
	pdf.Text(25, tableY+7, "ITEM")
	pdf.Text(70, tableY+7, "QTY (KG)")
	pdf.Text(100, tableY+7, "RATE (Rs/KG)")
	pdf.Text(140, tableY+7, "AMOUNT (Rs)")
	pdf.Rect(20, tableY, 170, 10, "D")

	const rowY = tableY + 10
	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorBody)
	pdf.Text(25, rowY+7, tx.Item)
	pdf.Text(70, rowY+7, tx.Quantity.String())
	pdf.Text(100, rowY+7, "Rs "+money.Format(tx.Rate))
	pdf.Text(140, rowY+7, "Rs "+money.Format(tx.Amount))
	pdf.Rect(20, rowY, 170, 10, "D")

	// Payment summary; the remaining balance is the number the customer
	// argues about, so it gets the emphasis.
	const summaryY = rowY + 30
	pdf.SetFont("Helvetica", "B", 12)
	setText(pdf, colorHeading)
	pdf.Text(20, summaryY, "PAYMENT SUMMARY")

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorBody)
	pdf.Text(20, summaryY+15, "Total Amount: Rs "+money.Format(tx.Amount))
	pdf.Text(20, summaryY+25, "Old Balance: Rs "+money.Format(tx.PriorBalance))
	pdf.Text(20, summaryY+35, "Payment Made: Rs "+money.Format(tx.Payment))

	pdf.SetFont("Helvetica", "B", 10)
	setText(pdf, colorEmphasis)
	pdf.Text(20, summaryY+45, "Remaining Balance: Rs "+money.Format(tx.Remaining))

	// Footer.
	pdf.SetFont("Helvetica", "", 9)
	setText(pdf, colorMuted)
	pdf.Text(20, 250, fmt.Sprintf("Thank you for your business! %s", a.branding.Tagline))
	pdf.Text(20, 260, "For any queries, contact us at "+a.branding.Contact)

	if err := pdf.Error(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderFailure, "error generating PDF")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderFailure, "error generating PDF")
	}

	return &Document{
		Bytes:    buf.Bytes(),
		Filename: Filename(tx.PartyName, tx.Date),
	}, nil
}

func setText(pdf *fpdf.Fpdf, c [3]int) {
	pdf.SetTextColor(c[0], c[1], c[2])
}
