package portfolio

import (
	"sort"

	"magicslate/pkg/models"
)

// InvestmentStatus flags whether a segment's cost share is out of line with
// its value share.
type InvestmentStatus string

const (
	OverInvested  InvestmentStatus = "Over-invested"
	UnderInvested InvestmentStatus = "Under-invested"
	Balanced      InvestmentStatus = "Balanced"
)

// InvestmentGap compares one segment's share of portfolio cost against its
// share of portfolio value.
type InvestmentGap struct {
	Segment    string           `json:"segment"`
	CostShare  float64          `json:"cost_share"`
	ValueShare float64          `json:"value_share"`
	Gap        float64          `json:"gap"` // cost share minus value share
	Status     InvestmentStatus `json:"status"`
}

// OverUnderInvestment flags segments whose cost share diverges from their
// value share by more than gapThreshold in either direction. Results are
// sorted by absolute gap descending; equal gaps keep segment aggregation
// order. Zero total cost or value makes every share zero, so everything
// reads Balanced.
func OverUnderInvestment(scorecards []models.TitleScorecard, by SegmentFunc, gapThreshold float64) []InvestmentGap {
	aggs := AggregateBy(scorecards, by)

	var totalCost, totalValue float64
	for _, a := range aggs {
		totalCost += a.TotalCost
		totalValue += a.TotalValue
	}

	gaps := make([]InvestmentGap, 0, len(aggs))
	for _, a := range aggs {
		g := InvestmentGap{Segment: a.Segment, Status: Balanced}
		if totalCost > 0 {
			g.CostShare = a.TotalCost / totalCost
		}
		if totalValue > 0 {
			g.ValueShare = a.TotalValue / totalValue
		}
		g.Gap = g.CostShare - g.ValueShare

		switch {
		case g.Gap > gapThreshold:
			g.Status = OverInvested
		case g.Gap < -gapThreshold:
			g.Status = UnderInvested
		}
		gaps = append(gaps, g)
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return abs(gaps[i].Gap) > abs(gaps[j].Gap)
	})
	return gaps
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
