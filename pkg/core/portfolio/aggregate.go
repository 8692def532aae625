// Package portfolio aggregates title scorecards into catalog-level views:
// per-segment rollups, value concentration, over/under-investment flags
// and summary statistics.
package portfolio

import (
	"math"
	"sort"

	"magicslate/pkg/models"
)

// SegmentFunc extracts the grouping key for a scorecard.
type SegmentFunc func(models.TitleScorecard) string

// Standard groupings.
var (
	ByBrand       SegmentFunc = func(sc models.TitleScorecard) string { return sc.Brand }
	ByGenre       SegmentFunc = func(sc models.TitleScorecard) string { return sc.Genre }
	ByPlatform    SegmentFunc = func(sc models.TitleScorecard) string { return string(sc.Platform) }
	ByContentType SegmentFunc = func(sc models.TitleScorecard) string { return string(sc.ContentType) }
)

// SegmentAggregate is one segment's rollup.
type SegmentAggregate struct {
	Segment   string `json:"segment"`
	NumTitles int    `json:"num_titles"`

	TotalHours      float64 `json:"total_hours_viewed"`
	TotalCost       float64 `json:"total_cost"`
	TotalValue      float64 `json:"total_value"`
	StreamingValue  float64 `json:"streaming_value"`
	TheatricalValue float64 `json:"theatrical_value"`
	AdValue         float64 `json:"ad_value"`

	AvgCriticScore   float64 `json:"avg_critic_score"`
	AvgAudienceScore float64 `json:"avg_audience_score"`
	AvgBuzzScore     float64 `json:"avg_buzz_score"`

	ROI         float64 `json:"roi"`
	CostPerHour float64 `json:"cost_per_hour"`
}

// AggregateBy rolls scorecards up by segment, sorted by total value
// descending; equal-value segments keep first-seen order.
func AggregateBy(scorecards []models.TitleScorecard, by SegmentFunc) []SegmentAggregate {
	index := make(map[string]int)
	var aggs []SegmentAggregate

	for _, sc := range scorecards {
		key := by(sc)
		i, ok := index[key]
		if !ok {
			i = len(aggs)
			index[key] = i
			aggs = append(aggs, SegmentAggregate{Segment: key})
		}

		a := &aggs[i]
		a.NumTitles++
		a.TotalHours += sc.TotalHoursViewed
		a.TotalCost += sc.TotalCost
		a.TotalValue += sc.TotalValue
		a.StreamingValue += sc.StreamingValue
		a.TheatricalValue += sc.TheatricalValue
		a.AdValue += sc.AdValue
		a.AvgCriticScore += sc.CriticScore
		a.AvgAudienceScore += sc.AudienceScore
		a.AvgBuzzScore += sc.BuzzScore
	}

	for i := range aggs {
		a := &aggs[i]
		n := float64(a.NumTitles)
		a.AvgCriticScore /= n
		a.AvgAudienceScore /= n
		a.AvgBuzzScore /= n

		if a.TotalCost > 0 {
			a.ROI = (a.TotalValue - a.TotalCost) / a.TotalCost
		}
		if a.TotalHours > 0 {
			a.CostPerHour = a.TotalCost / a.TotalHours
		} else {
			a.CostPerHour = math.Inf(1)
		}
	}

	sort.SliceStable(aggs, func(i, j int) bool {
		return aggs[i].TotalValue > aggs[j].TotalValue
	})
	return aggs
}

// Summary is the portfolio-wide rollup.
type Summary struct {
	TotalTitles     int     `json:"total_titles"`
	TotalHours      float64 `json:"total_hours"`
	TotalCost       float64 `json:"total_cost"`
	TotalValue      float64 `json:"total_value"`
	OverallROI      float64 `json:"overall_roi"`
	AvgCostPerHour  float64 `json:"avg_cost_per_hour"`
	AvgQualityScore float64 `json:"avg_quality_score"`
}

// Summarize computes the portfolio-wide summary. An empty portfolio yields
// the zero summary.
func Summarize(scorecards []models.TitleScorecard) Summary {
	if len(scorecards) == 0 {
		return Summary{}
	}

	var s Summary
	var critic, audience float64
	for _, sc := range scorecards {
		s.TotalTitles++
		s.TotalHours += sc.TotalHoursViewed
		s.TotalCost += sc.TotalCost
		s.TotalValue += sc.TotalValue
		critic += sc.CriticScore
		audience += sc.AudienceScore
	}

	if s.TotalCost > 0 {
		s.OverallROI = (s.TotalValue - s.TotalCost) / s.TotalCost
	}
	if s.TotalHours > 0 {
		s.AvgCostPerHour = s.TotalCost / s.TotalHours
	}
	n := float64(s.TotalTitles)
	s.AvgQualityScore = (critic/n + audience/n) / 2
	return s
}

// ClassAggregate is the rollup for one classification bucket.
type ClassAggregate struct {
	Classification models.Classification `json:"classification"`
	NumTitles      int                   `json:"num_titles"`
	TotalHours     float64               `json:"total_hours_viewed"`
	TotalCost      float64               `json:"total_cost"`
	TotalValue     float64               `json:"total_value"`
	AvgROI         float64               `json:"avg_roi"`
}

// ClassificationDistribution rolls scorecards up by classification,
// sorted by total value descending.
func ClassificationDistribution(scorecards []models.TitleScorecard) []ClassAggregate {
	index := make(map[models.Classification]int)
	var aggs []ClassAggregate

	for _, sc := range scorecards {
		i, ok := index[sc.Classification]
		if !ok {
			i = len(aggs)
			index[sc.Classification] = i
			aggs = append(aggs, ClassAggregate{Classification: sc.Classification})
		}
		a := &aggs[i]
		a.NumTitles++
		a.TotalHours += sc.TotalHoursViewed
		a.TotalCost += sc.TotalCost
		a.TotalValue += sc.TotalValue
		a.AvgROI += sc.ROI
	}

	for i := range aggs {
		aggs[i].AvgROI /= float64(aggs[i].NumTitles)
	}

	sort.SliceStable(aggs, func(i, j int) bool {
		return aggs[i].TotalValue > aggs[j].TotalValue
	})
	return aggs
}
