// Package pdf renders the printable export of a financial-year summary.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"taxbook/internal/tax"
)

// Summary renders one financial year's assessment as an A4 PDF.
func Summary(s tax.Summary, operator string, gstRegistered bool) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Financial Year Summary", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, fmt.Sprintf("Financial Year %d/%d", s.Year, s.Year+1))
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 12)
	if strings.TrimSpace(operator) != "" {
		doc.Cell(0, 8, "Operator: "+operator)
		doc.Ln(6)
	}
	registered := "No"
	if gstRegistered {
		registered = "Yes"
	}
	doc.Cell(0, 8, "GST registered: "+registered)
	doc.Ln(10)

	rows := []struct {
		label string
		value string
	}{
		{"Total earnings", "$" + s.TotalEarnings.StringFixed(2)},
		{"Total expenses", "$" + s.TotalExpenses.StringFixed(2)},
		{"Tax owed (permanent income)", "$" + s.TaxOwedPermanent.StringFixed(2)},
		{"Tax owed (business income)", "$" + s.TaxOwedBusiness.StringFixed(2)},
		{"GST to pay", "$" + s.GSTToPay.StringFixed(2)},
		{"GST to claim", "$" + s.GSTToClaim.StringFixed(2)},
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(90, 7, "Item")
	doc.Cell(50, 7, "Amount")
	doc.Ln(7)

	doc.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		doc.Cell(90, 7, row.label)
		doc.Cell(50, 7, row.value)
		doc.Ln(7)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
