package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"paint_quote/internal/adapter/presenter"
	"paint_quote/internal/domain/entities"
)

// WriteQuotationText writes a plain-text quotation document suitable for
// copying into an email or saving to disk.
func WriteQuotationText(w io.Writer, q entities.Quotation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	lines := []string{
		"PAINTING QUOTATION",
	}
	if q.ID != "" {
		lines = append(lines, "Reference:\t"+q.ID)
	}
	if !q.Timestamp.IsZero() {
		lines = append(lines, "Date:\t"+q.Timestamp.UTC().Format(timestampLayout)+" UTC")
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Client:\t%s (%s)", q.FullName, q.Email),
		"Phone:\t"+q.Phone,
		"Area:\t"+presenter.FormatArea(q.Area)+" sq meters",
		"Coats:\t"+q.Coats,
		"Paint Usage:\t"+q.PaintType,
		"Paint Category:\t"+q.PaintCategory,
		"",
		"Cost Breakdown:",
		moneyLine("Estimated Paint Material Cost", q.PaintMaterialCost),
		moneyLine("Estimated Labour Cost", q.LabourCost),
		moneyLine("Estimated Transport Cost", q.TransportCost),
		moneyLine(fmt.Sprintf("Miscellaneous & Overhead (%s)", presenter.FormatPercent(q.OverheadPercentage)), q.MiscellaneousCost),
		"",
		moneyLine("Estimated Grand Total", q.GrandTotal),
	)

	for _, l := range lines {
		if _, err := fmt.Fprintln(tw, l); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func moneyLine(label string, v float64) string {
	return fmt.Sprintf("%s:\t%s %s", label, presenter.FormatAmount(v), presenter.Currency)
}
