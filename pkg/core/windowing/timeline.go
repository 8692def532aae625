package windowing

import (
	"math"
)

const (
	// DefaultHorizonWeeks bounds the simulated timeline at five years.
	DefaultHorizonWeeks = 260

	// DefaultPeriodsPerYear treats each timeline period as one week.
	DefaultPeriodsPerYear = 52

	// Theatrical cash is spread evenly over the first twelve weeks.
	theatricalRunWeeks = 12

	// Streaming cash is spread over two years from the streaming start.
	streamingDurationWeeks = 104

	// Per-year exponential decay applied to weekly streaming cash.
	streamingDecayRate = 0.05
)

// Period is one week of the cash-flow timeline: the per-window cash
// components, their total, the discount factor for the period, and the
// running discounted value up to and including the period.
type Period struct {
	Index int `json:"period"`

	Theatrical float64 `json:"theatrical_cf"`
	PVOD       float64 `json:"pvod_cf"`
	Streaming  float64 `json:"streaming_cf"`
	Ad         float64 `json:"ad_cf"`
	License    float64 `json:"license_cf"`

	TotalCash      float64 `json:"total_cf"`
	DiscountFactor float64 `json:"discount_factor"`
	CumulativeNPV  float64 `json:"cumulative_npv"`
}

// Timeline is the full per-period cash-flow schedule for one scenario.
type Timeline struct {
	Periods  []Period `json:"periods"`
	TotalNPV float64  `json:"total_npv"`
}

// windowValues carries the undiscounted per-window totals a timeline
// distributes across periods.
type windowValues struct {
	theatrical float64
	pvod       float64
	streaming  float64 // post-cannibalization subscription value
	ad         float64
	license    float64
}

func (v windowValues) total() float64 {
	return v.theatrical + v.pvod + v.streaming + v.ad + v.license
}

// buildTimeline spreads the window values across weekly periods and
// discounts them. Undiscounted period totals sum exactly to the window
// values: theatrical is level over weeks [0,12), PVOD is level over its
// window, streaming and ad cash decay exponentially over 104 weeks with
// weights normalized to preserve the total, and the license fee lands as a
// lump sum at its start week.
func buildTimeline(v windowValues, s Scenario, annualDiscountRate float64, periodsPerYear int, horizonWeeks int) Timeline {
	periods := make([]Period, horizonWeeks)
	for i := range periods {
		periods[i].Index = i
	}

	if v.theatrical > 0 {
		weekly := v.theatrical / theatricalRunWeeks
		for w := 0; w < theatricalRunWeeks && w < horizonWeeks; w++ {
			periods[w].Theatrical += weekly
		}
	}

	if v.pvod > 0 && s.PVODWindowDays > 0 {
		start := s.TheatricalWindowDays / 7
		duration := s.PVODWindowDays / 7
		if duration < 1 {
			duration = 1
		}
		weekly := v.pvod / float64(duration)
		for w := start; w < start+duration && w < horizonWeeks; w++ {
			periods[w].PVOD += weekly
		}
	}

	if v.streaming > 0 || v.ad > 0 {
		start := s.StreamingOffsetDays() / 7

		// Normalize the decay weights so the undiscounted streaming total
		// matches the computed window value.
		var weightSum float64
		weights := make([]float64, streamingDurationWeeks)
		for w := range weights {
			weights[w] = math.Exp(-streamingDecayRate * float64(w) / 52)
			weightSum += weights[w]
		}

		for w := 0; w < streamingDurationWeeks; w++ {
			idx := start + w
			if idx >= horizonWeeks {
				break
			}
			share := weights[w] / weightSum
			periods[idx].Streaming += v.streaming * share
			periods[idx].Ad += v.ad * share
		}
	}

	if v.license > 0 {
		week := s.LicenseStartDays / 7
		if week < horizonWeeks {
			periods[week].License += v.license
		}
	}

	// Discounting: convert the annual rate to a per-period rate, then
	// accumulate the running NPV.
	periodRate := math.Pow(1+annualDiscountRate, 1/float64(periodsPerYear)) - 1

	var npv float64
	for i := range periods {
		p := &periods[i]
		p.TotalCash = p.Theatrical + p.PVOD + p.Streaming + p.Ad + p.License
		p.DiscountFactor = 1 / math.Pow(1+periodRate, float64(p.Index))
		npv += p.TotalCash * p.DiscountFactor
		p.CumulativeNPV = npv
	}

	return Timeline{Periods: periods, TotalNPV: npv}
}
