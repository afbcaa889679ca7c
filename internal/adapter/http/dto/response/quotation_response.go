package response

import (
	"time"

	"paint_quote/internal/domain/entities"
)

type QuotationResponse struct {
	ID                         string    `json:"id"`
	FullName                   string    `json:"fullName"`
	Email                      string    `json:"email"`
	Phone                      string    `json:"phone"`
	Area                       float64   `json:"area"`
	Coats                      string    `json:"coats"`
	CoatsKey                   string    `json:"coatsKey,omitempty"`
	PaintType                  string    `json:"paintType"`
	PaintCategory              string    `json:"paintCategory"`
	PaintCategoryKey           string    `json:"paintCategoryKey,omitempty"`
	EstimatedPaintMaterialCost float64   `json:"estimatedPaintMaterialCost"`
	EstimatedLabourCost        float64   `json:"estimatedLabourCost"`
	EstimatedTransportCost     float64   `json:"estimatedTransportCost"`
	MiscellaneousCost          float64   `json:"miscellaneousCost"`
	GrandTotal                 float64   `json:"grandTotal"`
	OverheadPercentage         float64   `json:"overheadPercentage"`
	Timestamp                  time.Time `json:"timestamp"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:                         q.ID,
		FullName:                   q.FullName,
		Email:                      q.Email,
		Phone:                      q.Phone,
		Area:                       q.Area,
		Coats:                      q.Coats,
		CoatsKey:                   q.CoatsKey,
		PaintType:                  q.PaintType,
		PaintCategory:              q.PaintCategory,
		PaintCategoryKey:           q.PaintCategoryKey,
		EstimatedPaintMaterialCost: q.PaintMaterialCost,
		EstimatedLabourCost:        q.LabourCost,
		EstimatedTransportCost:     q.TransportCost,
		MiscellaneousCost:          q.MiscellaneousCost,
		GrandTotal:                 q.GrandTotal,
		OverheadPercentage:         q.OverheadPercentage,
		Timestamp:                  q.Timestamp,
	}
}

// FromQuotations always returns a non-nil slice so an empty history encodes as [].
func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
