package portfolio

import (
	"math"
	"sort"

	"magicslate/pkg/models"
)

// TitleShare is one title's slice of portfolio value.
type TitleShare struct {
	TitleID    string  `json:"title_id"`
	TitleName  string  `json:"title_name"`
	TotalValue float64 `json:"total_value"`
	ValueShare float64 `json:"value_share"`
}

// ConcentrationMetrics describes how concentrated the portfolio's value is.
type ConcentrationMetrics struct {
	// HHI on value shares, 0-10000 scale. 10000 means one title carries
	// everything.
	HHI float64 `json:"hhi"`

	TopNShare float64      `json:"top_n_share"`
	TopTitles []TitleShare `json:"top_titles"`
}

// HHI computes the Herfindahl-Hirschman index over the given values on the
// conventional 0-10000 scale. Non-positive values contribute nothing; an
// all-zero input yields 0.
func HHI(values []float64) float64 {
	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return 0
	}

	var hhi float64
	for _, v := range values {
		if v > 0 {
			share := v / total
			hhi += share * share
		}
	}
	return hhi * 10000
}

// Concentration computes value concentration across the portfolio and the
// topN largest titles by value. Ties keep input order.
func Concentration(scorecards []models.TitleScorecard, topN int) ConcentrationMetrics {
	values := make([]float64, len(scorecards))
	var total float64
	for i, sc := range scorecards {
		values[i] = sc.TotalValue
		if sc.TotalValue > 0 {
			total += sc.TotalValue
		}
	}

	metrics := ConcentrationMetrics{HHI: HHI(values)}

	ranked := make([]models.TitleScorecard, len(scorecards))
	copy(ranked, scorecards)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalValue > ranked[j].TotalValue
	})
	if topN > len(ranked) {
		topN = len(ranked)
	}

	for _, sc := range ranked[:topN] {
		share := 0.0
		if total > 0 && sc.TotalValue > 0 {
			share = sc.TotalValue / total
		}
		metrics.TopTitles = append(metrics.TopTitles, TitleShare{
			TitleID:    sc.TitleID,
			TitleName:  sc.TitleName,
			TotalValue: sc.TotalValue,
			ValueShare: share,
		})
		metrics.TopNShare += share
	}

	return metrics
}

// ROIQuartiles returns the 25th, 50th and 75th percentile ROI across the
// portfolio using linear interpolation between order statistics. An empty
// portfolio yields zeros.
func ROIQuartiles(scorecards []models.TitleScorecard) (q1, median, q3 float64) {
	if len(scorecards) == 0 {
		return 0, 0, 0
	}

	rois := make([]float64, len(scorecards))
	for i, sc := range scorecards {
		rois[i] = sc.ROI
	}
	sort.Float64s(rois)

	return quantile(rois, 0.25), quantile(rois, 0.50), quantile(rois, 0.75)
}

// quantile interpolates over an ascending-sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
