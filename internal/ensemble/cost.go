package ensemble

// Currency used by every estimate.
const costCurrency = "USD"

// unitCostPerPage is the static per-page price of running each specialist.
var unitCostPerPage = map[SpecialistKind]float64{
	KindVision:        0.012,
	KindLayout:        0.004,
	KindSemantic:      0.008,
	KindTextExtract:   0.002,
	KindBrand:         0.006,
	KindAccessibility: 0.003,
}

// enrichmentCostPerPage is the fixed addon for corrected-visual synthesis.
const enrichmentCostPerPage = 0.020

// CostEstimate is the projected monetary cost of a run. Derived and
// stateless; recomputable at any time from the enabled set and page count.
type CostEstimate struct {
	PerSpecialist map[SpecialistKind]float64 `json:"perSpecialist"`
	Total         float64                    `json:"total"`
	Currency      string                     `json:"currency"`
	PerPage       float64                    `json:"perPage"`
}

// EstimateCost prices a run: pageCount x unit cost per enabled specialist,
// plus the enrichment addon per page when requested. Total never increases
// when a specialist is removed and scales linearly with pageCount.
func EstimateCost(enabled []SpecialistKind, pageCount int, enrichment bool) CostEstimate {
	est := CostEstimate{
		PerSpecialist: make(map[SpecialistKind]float64, len(enabled)),
		Currency:      costCurrency,
	}
	if pageCount <= 0 {
		return est
	}

	for _, kind := range enabled {
		cost := float64(pageCount) * unitCostPerPage[kind]
		est.PerSpecialist[kind] = cost
		est.Total += cost
	}
	if enrichment {
		est.Total += float64(pageCount) * enrichmentCostPerPage
	}
	est.PerPage = est.Total / float64(pageCount)
	return est
}
