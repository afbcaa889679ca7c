package response

import "paint_quote/internal/domain/entities"

type RatesResponse struct {
	PaintCategoryCostsPerSqm map[string]float64 `json:"paintCategoryCostsPerSqm"`
	CoatMultipliers          map[string]float64 `json:"coatMultipliers"`
	LabourRatePerSqm         float64            `json:"labourRatePerSqm"`
	TransportRate            float64            `json:"transportRate"`
	OverheadPercentage       float64            `json:"overheadPercentage"`
}

func FromRates(r entities.Rates) RatesResponse {
	coats := r.CoatMultiplier
	if coats == nil {
		coats = map[string]float64{}
	}
	return RatesResponse{
		PaintCategoryCostsPerSqm: r.PaintCategoryCostPerSqm,
		CoatMultipliers:          coats,
		LabourRatePerSqm:         r.LabourRatePerSqm,
		TransportRate:            r.TransportRate,
		OverheadPercentage:       r.OverheadPercentage,
	}
}
