// Package engagement extracts curve statistics and a fitted decay model
// from a title's weekly viewing series.
package engagement

import (
	"math"

	"magicslate/pkg/models"
)

// Hours after this week count toward the long tail.
const longTailWeek = 4

// Weeks above this fraction of peak count as "above threshold".
const peakThresholdShare = 0.1

// Minimum post-peak points needed to estimate a decay rate.
const minDecayPoints = 3

// CurveStatistics summarizes the shape of one title's engagement curve.
type CurveStatistics struct {
	PeakHours           float64 `json:"peak_hours"`
	PeakWeek            int     `json:"peak_week"`
	TotalHours          float64 `json:"total_hours"`
	DecayRate           float64 `json:"decay_rate"`
	LongTailShare       float64 `json:"long_tail_share"`
	WeeksAboveThreshold int     `json:"weeks_above_threshold"`
}

// ComputeCurveStatistics derives peak, decay and long-tail statistics from a
// weekly viewing series. An empty series yields all-zero statistics, not an
// error. The decay rate is the negated slope of a least-squares fit of
// log(hours+1) against weeks-since-peak over the strictly post-peak points;
// fewer than three such points yields a decay rate of 0, and negative rates
// are clamped to 0.
func ComputeCurveStatistics(series models.EngagementSeries) CurveStatistics {
	if len(series) == 0 {
		return CurveStatistics{}
	}

	sorted := series.Sorted()

	var stats CurveStatistics
	for _, p := range sorted {
		stats.TotalHours += p.HoursViewed
		if p.HoursViewed > stats.PeakHours {
			stats.PeakHours = p.HoursViewed
			stats.PeakWeek = p.WeekNumber
		}
	}

	// Exponential decay: hours ~ peak * exp(-decayRate * weeksSincePeak),
	// estimated on log-transformed post-peak points.
	var xs, ys []float64
	for _, p := range sorted {
		if p.WeekNumber > stats.PeakWeek {
			xs = append(xs, float64(p.WeekNumber-stats.PeakWeek))
			ys = append(ys, math.Log(p.HoursViewed+1))
		}
	}
	if len(xs) >= minDecayPoints {
		if slope, _, ok := linearFit(xs, ys); ok {
			stats.DecayRate = math.Max(0, -slope)
		}
	}

	var longTailHours float64
	threshold := stats.PeakHours * peakThresholdShare
	for _, p := range sorted {
		if p.WeekNumber > longTailWeek {
			longTailHours += p.HoursViewed
		}
		if p.HoursViewed > threshold {
			stats.WeeksAboveThreshold++
		}
	}
	if stats.TotalHours > 0 {
		stats.LongTailShare = longTailHours / stats.TotalHours
	}

	return stats
}

// linearFit runs an ordinary least-squares fit y = intercept + slope*x.
// Returns ok=false when the fit is degenerate (fewer than two points or
// zero variance in x).
func linearFit(xs, ys []float64) (slope, intercept float64, ok bool) {
	n := float64(len(xs))
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, 0, false
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var covXY, varX float64
	for i := range xs {
		covXY += (xs[i] - meanX) * (ys[i] - meanY)
		varX += (xs[i] - meanX) * (xs[i] - meanX)
	}
	if varX == 0 {
		return 0, 0, false
	}

	slope = covXY / varX
	intercept = meanY - slope*meanX
	return slope, intercept, true
}
