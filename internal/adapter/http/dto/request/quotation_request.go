package request

import (
	"strings"

	"paint_quote/internal/domain/entities"
)

// QuotationRequest is the body of POST /quotations and PUT /quotations/{id}.
// Amounts are accepted as computed by the client and stored unchanged.
type QuotationRequest struct {
	FullName         string  `json:"fullName" binding:"required"`
	Email            string  `json:"email" binding:"required"`
	Phone            string  `json:"phone" binding:"required"`
	Area             float64 `json:"area" binding:"required,gt=0"`
	Coats            string  `json:"coats" binding:"required"`
	CoatsKey         string  `json:"coatsKey"`
	PaintType        string  `json:"paintType" binding:"required"`
	PaintCategory    string  `json:"paintCategory" binding:"required"`
	PaintCategoryKey string  `json:"paintCategoryKey"`

	EstimatedPaintMaterialCost float64 `json:"estimatedPaintMaterialCost" binding:"gte=0"`
	EstimatedLabourCost        float64 `json:"estimatedLabourCost" binding:"gte=0"`
	EstimatedTransportCost     float64 `json:"estimatedTransportCost" binding:"gte=0"`
	MiscellaneousCost          float64 `json:"miscellaneousCost" binding:"gte=0"`
	GrandTotal                 float64 `json:"grandTotal" binding:"gte=0"`
	OverheadPercentage         float64 `json:"overheadPercentage" binding:"gte=0"`
}

func (r QuotationRequest) ToEntity() entities.Quotation {
	return entities.Quotation{
		FullName:         strings.TrimSpace(r.FullName),
		Email:            strings.TrimSpace(r.Email),
		Phone:            strings.TrimSpace(r.Phone),
		Area:             r.Area,
		Coats:            strings.TrimSpace(r.Coats),
		CoatsKey:         strings.TrimSpace(r.CoatsKey),
		PaintType:        strings.TrimSpace(r.PaintType),
		PaintCategory:    strings.TrimSpace(r.PaintCategory),
		PaintCategoryKey: strings.TrimSpace(r.PaintCategoryKey),
		CostBreakdown: entities.CostBreakdown{
			PaintMaterialCost: r.EstimatedPaintMaterialCost,
			LabourCost:        r.EstimatedLabourCost,
			TransportCost:     r.EstimatedTransportCost,
			MiscellaneousCost: r.MiscellaneousCost,
			GrandTotal:        r.GrandTotal,
		},
		OverheadPercentage: r.OverheadPercentage,
	}
}
