package forecast

import (
	"math"

	"magicslate/pkg/core/comps"
)

// computeDistribution derives mean/std/min/max for hours, value and ROI
// across the comparable set.
func computeDistribution(matches comps.ComparableSet) Distribution {
	hours := make([]float64, len(matches))
	value := make([]float64, len(matches))
	roi := make([]float64, len(matches))
	for i, m := range matches {
		hours[i] = m.Scorecard.TotalHoursViewed
		value[i] = m.Scorecard.TotalValue
		roi[i] = m.Scorecard.ROI
	}
	return Distribution{
		Hours: describe(hours),
		Value: describe(value),
		ROI:   describe(roi),
	}
}

// describe computes summary statistics with sample standard deviation.
func describe(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	s := Stats{Min: values[0], Max: values[0]}
	for _, v := range values {
		s.Mean += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean /= float64(len(values))

	if len(values) > 1 {
		var ss float64
		for _, v := range values {
			ss += (v - s.Mean) * (v - s.Mean)
		}
		s.Std = math.Sqrt(ss / float64(len(values)-1))
	}

	return s
}

// baseScenario projects the comp mean scaled by the concept multiplier.
func baseScenario(d Distribution, multiplier, cost float64) Scenario {
	return newScenario(d.Hours.Mean*multiplier, d.Value.Mean*multiplier, cost)
}

// bearScenario takes mean minus one std, floored at the observed minimum,
// with an additional 30% pessimism haircut.
func bearScenario(d Distribution, multiplier, cost float64) Scenario {
	hours := math.Max(d.Hours.Mean-d.Hours.Std, d.Hours.Min) * multiplier * 0.7
	value := math.Max(d.Value.Mean-d.Value.Std, d.Value.Min) * multiplier * 0.7
	return newScenario(hours, value, cost)
}

// bullScenario takes mean plus one std, capped at 120% of the observed
// maximum, with a single 30% optimism amplification.
func bullScenario(d Distribution, multiplier, cost float64) Scenario {
	hours := math.Min(d.Hours.Mean+d.Hours.Std, d.Hours.Max*1.2) * 1.3 * multiplier
	value := math.Min(d.Value.Mean+d.Value.Std, d.Value.Max*1.2) * 1.3 * multiplier
	return newScenario(hours, value, cost)
}

// newScenario assembles a scenario, recomputing ROI against the concept's
// own cost. A zero-cost concept has ROI 0 by definition.
func newScenario(hours, value, cost float64) Scenario {
	roi := 0.0
	if cost > 0 {
		roi = (value - cost) / cost
	}
	return Scenario{
		TotalHours: hours,
		TotalValue: value,
		TotalCost:  cost,
		ROI:        roi,
	}
}
