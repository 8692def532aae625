package forecast

// DefaultCostAdjustments spans a 20% cost cut to a 20% overrun.
var DefaultCostAdjustments = []float64{-0.2, -0.1, 0, 0.1, 0.2}

// SensitivityPoint is one row of the cost sensitivity grid.
type SensitivityPoint struct {
	CostAdjustment float64 `json:"cost_adjustment"` // e.g. -0.2 for a 20% reduction
	AdjustedCost   float64 `json:"adjusted_cost"`
	ProjectedValue float64 `json:"projected_value"`
	ROI            float64 `json:"roi"`
}

// SensitivityAnalysis recomputes the base scenario's ROI under each cost
// adjustment, holding the projected value fixed. Nil adjustments use
// DefaultCostAdjustments.
func SensitivityAnalysis(base Scenario, adjustments []float64) []SensitivityPoint {
	if adjustments == nil {
		adjustments = DefaultCostAdjustments
	}

	points := make([]SensitivityPoint, 0, len(adjustments))
	for _, adj := range adjustments {
		cost := base.TotalCost * (1 + adj)
		roi := 0.0
		if cost > 0 {
			roi = (base.TotalValue - cost) / cost
		}
		points = append(points, SensitivityPoint{
			CostAdjustment: adj,
			AdjustedCost:   cost,
			ProjectedValue: base.TotalValue,
			ROI:            roi,
		})
	}
	return points
}
