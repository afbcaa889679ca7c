package usecase

import "paint_quote/internal/domain/entities"

// PricingEngine maps a job description and a rate set to a cost breakdown.
//
// Compute is pure and never fails. Unknown paint categories cost nothing and unknown
// coat labels use entities.DefaultCoatMultiplier; callers gate on RateStore readiness
// before pricing.
type PricingEngine struct{}

func (PricingEngine) Compute(in entities.QuotationInput, rates entities.Rates) entities.CostBreakdown {
	unitCost := rates.PaintCategoryCostPerSqm[in.PaintCategory]
	multiplier, ok := rates.CoatMultiplier[in.Coats]
	if !ok {
		multiplier = entities.DefaultCoatMultiplier
	}

	paintMaterial := in.Area * unitCost * multiplier
	labour := in.Area * rates.LabourRatePerSqm
	transport := rates.TransportRate
	subtotal := paintMaterial + labour + transport
	overhead := subtotal * rates.OverheadPercentage

	return entities.CostBreakdown{
		PaintMaterialCost: paintMaterial,
		LabourCost:        labour,
		TransportCost:     transport,
		MiscellaneousCost: overhead,
		GrandTotal:        subtotal + overhead,
	}
}
