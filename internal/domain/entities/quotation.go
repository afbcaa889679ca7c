package entities

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// QuotationInput is the job description captured from the user before pricing.
//
// Coats and PaintCategory are rate keys. The optional labels are what gets stored
// and displayed; they default to the key.
type QuotationInput struct {
	FullName           string  `validate:"required"`
	Email              string  `validate:"required"`
	Phone              string  `validate:"required"`
	Area               float64 `validate:"gt=0"`
	Coats              string  `validate:"required"`
	CoatsLabel         string
	PaintType          string `validate:"required"`
	PaintCategory      string `validate:"required"`
	PaintCategoryLabel string
}

// Normalize trims surrounding whitespace from every text field.
func (in QuotationInput) Normalize() QuotationInput {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Coats = strings.TrimSpace(in.Coats)
	in.CoatsLabel = strings.TrimSpace(in.CoatsLabel)
	in.PaintType = strings.TrimSpace(in.PaintType)
	in.PaintCategory = strings.TrimSpace(in.PaintCategory)
	in.PaintCategoryLabel = strings.TrimSpace(in.PaintCategoryLabel)
	return in
}

// CostBreakdown is the derived price of a job. Amounts keep full precision; rounding
// happens only when they are displayed or exported.
type CostBreakdown struct {
	PaintMaterialCost float64 `json:"estimatedPaintMaterialCost"`
	LabourCost        float64 `json:"estimatedLabourCost"`
	TransportCost     float64 `json:"estimatedTransportCost"`
	MiscellaneousCost float64 `json:"miscellaneousCost"`
	GrandTotal        float64 `json:"grandTotal"`
}

// Quotation is a persisted, priced job estimate.
//
// ID is assigned by the store on create and is empty for a local draft.
// Coats and PaintCategory hold display labels; the *Key fields keep the rate keys so
// an edited quotation can be priced again.
type Quotation struct {
	ID               string  `json:"id,omitempty"`
	FullName         string  `json:"fullName"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Area             float64 `json:"area"`
	Coats            string  `json:"coats"`
	CoatsKey         string  `json:"coatsKey,omitempty"`
	PaintType        string  `json:"paintType"`
	PaintCategory    string  `json:"paintCategory"`
	PaintCategoryKey string  `json:"paintCategoryKey,omitempty"`
	CostBreakdown
	OverheadPercentage float64   `json:"overheadPercentage"`
	Timestamp          time.Time `json:"timestamp"`
}

// NewQuotation assembles an unsaved quotation from a priced input.
func NewQuotation(in QuotationInput, breakdown CostBreakdown, rates Rates, now time.Time) Quotation {
	coatsLabel := in.CoatsLabel
	if coatsLabel == "" {
		coatsLabel = in.Coats
	}
	categoryLabel := in.PaintCategoryLabel
	if categoryLabel == "" {
		categoryLabel = in.PaintCategory
	}
	return Quotation{
		FullName:           in.FullName,
		Email:              in.Email,
		Phone:              in.Phone,
		Area:               in.Area,
		Coats:              coatsLabel,
		CoatsKey:           in.Coats,
		PaintType:          capitalize(in.PaintType),
		PaintCategory:      categoryLabel,
		PaintCategoryKey:   in.PaintCategory,
		CostBreakdown:      breakdown,
		OverheadPercentage: rates.OverheadPercentage * 100,
		Timestamp:          now.UTC(),
	}
}

// Input rebuilds the editable job description of q.
func (q Quotation) Input() QuotationInput {
	coats := q.CoatsKey
	if coats == "" {
		coats = q.Coats
	}
	category := q.PaintCategoryKey
	if category == "" {
		category = q.PaintCategory
	}
	return QuotationInput{
		FullName:           q.FullName,
		Email:              q.Email,
		Phone:              q.Phone,
		Area:               q.Area,
		Coats:              coats,
		CoatsLabel:         q.Coats,
		PaintType:          q.PaintType,
		PaintCategory:      category,
		PaintCategoryLabel: q.PaintCategory,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
