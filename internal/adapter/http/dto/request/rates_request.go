package request

import "paint_quote/internal/domain/entities"

// RatesRequest is the body of PUT /rates. Every field must be present; the
// pointers let an explicit zero be told apart from a missing value.
type RatesRequest struct {
	PaintCategoryCostsPerSqm map[string]float64 `json:"paintCategoryCostsPerSqm" binding:"required"`
	CoatMultipliers          map[string]float64 `json:"coatMultipliers" binding:"required"`
	LabourRatePerSqm         *float64           `json:"labourRatePerSqm" binding:"required"`
	TransportRate            *float64           `json:"transportRate" binding:"required"`
	OverheadPercentage       *float64           `json:"overheadPercentage" binding:"required"`
}

func (r RatesRequest) ToEntity() entities.Rates {
	out := entities.Rates{
		PaintCategoryCostPerSqm: r.PaintCategoryCostsPerSqm,
		CoatMultiplier:          r.CoatMultipliers,
	}
	if r.LabourRatePerSqm != nil {
		out.LabourRatePerSqm = *r.LabourRatePerSqm
	}
	if r.TransportRate != nil {
		out.TransportRate = *r.TransportRate
	}
	if r.OverheadPercentage != nil {
		out.OverheadPercentage = *r.OverheadPercentage
	}
	return out
}
