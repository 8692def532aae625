package engagement

import (
	"math"

	"magicslate/pkg/models"
)

// PredictedPoint is one week of the fitted decay model, aligned to an
// observed week in the input series.
type PredictedPoint struct {
	Week  int     `json:"week"`
	Hours float64 `json:"hours"`
}

// FitDecayModel fits the exponential decay model to a series and returns the
// predicted curve plus its R-squared against the observed hours.
//
// Weeks before the peak are reproduced as observed (the model carries no
// pre-peak shape); weeks at or after the peak follow
// exp(intercept + slope*weeksSincePeak) - 1 from a log-linear fit over the
// at-or-after-peak points. Note the fit window differs from
// ComputeCurveStatistics, which excludes the peak week itself, so the model
// is refit here rather than reusing the statistics slope.
//
// With fewer than two usable points the model degenerates to a flat
// prediction equal to the observed values with R-squared 0.
func FitDecayModel(series models.EngagementSeries) ([]PredictedPoint, float64) {
	if len(series) == 0 {
		return nil, 0
	}

	sorted := series.Sorted()

	peakWeek := sorted[0].WeekNumber
	peakHours := sorted[0].HoursViewed
	for _, p := range sorted {
		if p.HoursViewed > peakHours {
			peakHours = p.HoursViewed
			peakWeek = p.WeekNumber
		}
	}

	var xs, ys []float64
	for _, p := range sorted {
		if p.WeekNumber >= peakWeek {
			xs = append(xs, float64(p.WeekNumber-peakWeek))
			ys = append(ys, math.Log(p.HoursViewed+1))
		}
	}

	slope, intercept, ok := linearFit(xs, ys)
	if !ok {
		// Degenerate fit: echo the observations.
		flat := make([]PredictedPoint, len(sorted))
		for i, p := range sorted {
			flat[i] = PredictedPoint{Week: p.WeekNumber, Hours: p.HoursViewed}
		}
		return flat, 0
	}

	predicted := make([]PredictedPoint, len(sorted))
	for i, p := range sorted {
		if p.WeekNumber < peakWeek {
			predicted[i] = PredictedPoint{Week: p.WeekNumber, Hours: p.HoursViewed}
			continue
		}
		dw := float64(p.WeekNumber - peakWeek)
		predicted[i] = PredictedPoint{
			Week:  p.WeekNumber,
			Hours: math.Exp(intercept+slope*dw) - 1,
		}
	}

	return predicted, rSquared(sorted, predicted)
}

// rSquared computes the classical coefficient of determination of the
// predicted curve against the observed hours, clamped to [0, 1].
func rSquared(observed models.EngagementSeries, predicted []PredictedPoint) float64 {
	var meanObs float64
	for _, p := range observed {
		meanObs += p.HoursViewed
	}
	meanObs /= float64(len(observed))

	var ssRes, ssTot float64
	for i, p := range observed {
		res := p.HoursViewed - predicted[i].Hours
		ssRes += res * res
		dev := p.HoursViewed - meanObs
		ssTot += dev * dev
	}
	if ssTot == 0 {
		return 0
	}

	r2 := 1 - ssRes/ssTot
	return math.Min(1, math.Max(0, r2))
}
