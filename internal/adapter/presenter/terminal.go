package presenter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"

	"github.com/charmbracelet/lipgloss"
)

const timestampLayout = "2006-01-02 15:04"

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	amount  lipgloss.Style
	total   lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1),
		label: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Width(34),
		value: r.NewStyle().
			Foreground(lipgloss.Color("252")),
		amount: r.NewStyle().
			Foreground(lipgloss.Color("63")).
			Width(14).
			Align(lipgloss.Right),
		total: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("57")).
			Width(14).
			Align(lipgloss.Right),
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		success: r.NewStyle().
			Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")),
	}
}

// Terminal writes quotations, history and notices to a terminal. Colours are
// dropped automatically when out is not a TTY.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
	st  styles
}

var _ interfaces.IPresenter = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out, st: newStyles(lipgloss.NewRenderer(out))}
}

func (t *Terminal) RenderCurrent(q *entities.Quotation) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if q == nil {
		fmt.Fprintln(t.out, t.st.muted.Render("No quotation to display."))
		return
	}

	var s strings.Builder
	title := "QUOTATION"
	if q.ID != "" {
		title += " " + q.ID
	}
	s.WriteString(t.st.title.Render(title))
	s.WriteString("\n")

	s.WriteString(t.field("Client", fmt.Sprintf("%s (%s)", q.FullName, q.Email)))
	s.WriteString(t.field("Phone", q.Phone))
	s.WriteString(t.field("Area", FormatArea(q.Area)+" sq meters"))
	s.WriteString(t.field("Coats", q.Coats))
	s.WriteString(t.field("Paint Usage", q.PaintType))
	s.WriteString(t.field("Paint Category", q.PaintCategory))
	if !q.Timestamp.IsZero() {
		s.WriteString(t.field("Date", q.Timestamp.Local().Format(timestampLayout)))
	}

	s.WriteString("\n")
	s.WriteString(t.st.header.Render("Cost Breakdown"))
	s.WriteString("\n")
	s.WriteString(t.money("Estimated Paint Material Cost", q.PaintMaterialCost, t.st.amount))
	s.WriteString(t.money("Estimated Labour Cost", q.LabourCost, t.st.amount))
	s.WriteString(t.money("Estimated Transport Cost", q.TransportCost, t.st.amount))
	s.WriteString(t.money(fmt.Sprintf("Miscellaneous & Overhead (%s)", FormatPercent(q.OverheadPercentage)), q.MiscellaneousCost, t.st.amount))
	s.WriteString(t.money("Estimated Grand Total", q.GrandTotal, t.st.total))

	fmt.Fprint(t.out, s.String())
}

func (t *Terminal) RenderHistory(quotations []entities.Quotation) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(quotations) == 0 {
		fmt.Fprintln(t.out, t.st.muted.Render("No saved quotations yet."))
		return
	}

	var s strings.Builder
	s.WriteString(t.st.title.Render(fmt.Sprintf("SAVED QUOTATIONS (%d)", len(quotations))))
	s.WriteString("\n")
	s.WriteString(t.st.header.Render(fmt.Sprintf("%-36s  %-16s  %-24s  %8s  %-12s  %14s", "ID", "DATE", "CLIENT", "AREA", "CATEGORY", "TOTAL ("+Currency+")")))
	s.WriteString("\n")
	for _, q := range quotations {
		date := ""
		if !q.Timestamp.IsZero() {
			date = q.Timestamp.Local().Format(timestampLayout)
		}
		s.WriteString(fmt.Sprintf("%-36s  %-16s  %-24s  %8s  %-12s  %14s\n",
			q.ID, date, truncate(q.FullName, 24), FormatArea(q.Area), truncate(q.PaintCategory, 12), FormatAmount(q.GrandTotal)))
	}
	fmt.Fprint(t.out, s.String())
}

func (t *Terminal) Notify(message string, isError bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if isError {
		fmt.Fprintln(t.out, t.st.failure.Render("✗ "+message))
		return
	}
	fmt.Fprintln(t.out, t.st.success.Render("✓ "+message))
}

// RenderRates prints the published rate set.
func (t *Terminal) RenderRates(r entities.Rates) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s strings.Builder
	s.WriteString(t.st.title.Render("RATES"))
	s.WriteString("\n")
	s.WriteString(t.st.header.Render("Paint categories (per sq meter)"))
	s.WriteString("\n")
	for _, k := range sortedKeys(r.PaintCategoryCostPerSqm) {
		s.WriteString(t.money(k, r.PaintCategoryCostPerSqm[k], t.st.amount))
	}
	s.WriteString(t.st.header.Render("Coat multipliers"))
	s.WriteString("\n")
	for _, k := range sortedKeys(r.CoatMultiplier) {
		s.WriteString(t.field(k, fmt.Sprintf("x%s", FormatArea(r.CoatMultiplier[k]))))
	}
	s.WriteString("\n")
	s.WriteString(t.money("Labour rate (per sq meter)", r.LabourRatePerSqm, t.st.amount))
	s.WriteString(t.money("Transport", r.TransportRate, t.st.amount))
	s.WriteString(t.field("Overhead", FormatPercent(r.OverheadPercentage*100)))

	fmt.Fprint(t.out, s.String())
}

func (t *Terminal) field(label, value string) string {
	return t.st.label.Render(label+":") + t.st.value.Render(value) + "\n"
}

func (t *Terminal) money(label string, v float64, style lipgloss.Style) string {
	return t.st.label.Render(label+":") + style.Render(FormatAmount(v)) + " " + Currency + "\n"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
