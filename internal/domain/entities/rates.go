package entities

import (
	"errors"
	"fmt"
)

// DefaultCoatMultiplier applies when a coat label has no configured multiplier.
const DefaultCoatMultiplier = 1.0

// Rates is the published unit-cost configuration used to price a job.
//
// A Rates value is replaced wholesale on reload; nothing mutates it in place once it
// has been handed to a RateStore.
type Rates struct {
	PaintCategoryCostPerSqm map[string]float64 `json:"paintCategoryCostsPerSqm"`
	CoatMultiplier          map[string]float64 `json:"coatMultipliers"`
	LabourRatePerSqm        float64            `json:"labourRatePerSqm"`
	TransportRate           float64            `json:"transportRate"`
	OverheadPercentage      float64            `json:"overheadPercentage"`
}

// Validate reports why r cannot be used for pricing, or nil when it is ready.
func (r Rates) Validate() error {
	if len(r.PaintCategoryCostPerSqm) == 0 {
		return errors.New("no paint category costs configured")
	}
	for key, cost := range r.PaintCategoryCostPerSqm {
		if cost < 0 {
			return fmt.Errorf("paint category %q has a negative cost", key)
		}
	}
	if r.CoatMultiplier == nil {
		return errors.New("coat multipliers missing")
	}
	for key, m := range r.CoatMultiplier {
		if m <= 0 {
			return fmt.Errorf("coat multiplier %q must be positive", key)
		}
	}
	if r.LabourRatePerSqm <= 0 {
		return errors.New("labour rate must be greater than zero")
	}
	if r.TransportRate <= 0 {
		return errors.New("transport rate must be greater than zero")
	}
	if r.OverheadPercentage < 0 || r.OverheadPercentage >= 1 {
		return errors.New("overhead percentage must be a fraction in [0, 1)")
	}
	return nil
}

// IsReady reports whether r is complete enough to price a job.
func (r Rates) IsReady() bool {
	return r.Validate() == nil
}

// Clone returns a deep copy so callers cannot mutate a stored value through its maps.
func (r Rates) Clone() Rates {
	out := r
	if r.PaintCategoryCostPerSqm != nil {
		out.PaintCategoryCostPerSqm = make(map[string]float64, len(r.PaintCategoryCostPerSqm))
		for k, v := range r.PaintCategoryCostPerSqm {
			out.PaintCategoryCostPerSqm[k] = v
		}
	}
	if r.CoatMultiplier != nil {
		out.CoatMultiplier = make(map[string]float64, len(r.CoatMultiplier))
		for k, v := range r.CoatMultiplier {
			out.CoatMultiplier[k] = v
		}
	}
	return out
}
