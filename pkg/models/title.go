// Package models defines the shared value records for the Magic Slate
// analytical core: catalog metadata, engagement series, quality scores,
// and the derived title scorecard. All types are plain immutable records;
// engines recompute them rather than mutating in place.
package models

import (
	"time"
)

// ContentType distinguishes films from series.
type ContentType string

const (
	ContentFilm   ContentType = "Film"
	ContentSeries ContentType = "Series"
)

// Platform identifies the primary streaming platform for a title.
type Platform string

const (
	PlatformDisneyPlus Platform = "Disney+"
	PlatformHulu       Platform = "Hulu"
)

// BudgetTier buckets production budgets into an ordered Low/Medium/High scale.
type BudgetTier string

const (
	TierLow    BudgetTier = "Low"
	TierMedium BudgetTier = "Medium"
	TierHigh   BudgetTier = "High"
)

// tierOrder gives each tier its position in the ordered scale.
var tierOrder = map[BudgetTier]int{
	TierLow:    0,
	TierMedium: 1,
	TierHigh:   2,
}

// Index returns the tier's position in the Low < Medium < High ordering,
// or -1 for an unknown tier.
func (t BudgetTier) Index() int {
	if i, ok := tierOrder[t]; ok {
		return i
	}
	return -1
}

// Adjacent reports whether two tiers sit next to each other in the ordering
// (Low/Medium or Medium/High). Unknown tiers are never adjacent.
func (t BudgetTier) Adjacent(other BudgetTier) bool {
	a, b := t.Index(), other.Index()
	if a < 0 || b < 0 {
		return false
	}
	diff := a - b
	return diff == 1 || diff == -1
}

// TierForBudget derives a budget tier from a budget estimate in millions:
// under $20M is Low, under $80M is Medium, everything else High.
func TierForBudget(budgetMillions float64) BudgetTier {
	switch {
	case budgetMillions < 20:
		return TierLow
	case budgetMillions < 80:
		return TierMedium
	default:
		return TierHigh
	}
}

// TitleRecord is the immutable metadata for one catalog entry.
// Budgets are in millions of dollars, matching the input tables;
// release dates are optional (nil means the window never opened).
type TitleRecord struct {
	TitleID     string      `json:"title_id"`
	TitleName   string      `json:"title_name"`
	Brand       string      `json:"brand"`
	Genre       string      `json:"genre"`
	Platform    Platform    `json:"platform_primary"`
	ContentType ContentType `json:"content_type"`

	BudgetTier               BudgetTier `json:"production_budget_tier"`
	ProductionBudgetMillions float64    `json:"estimated_production_budget"`
	MarketingSpendMillions   float64    `json:"estimated_marketing_spend"`

	ReleaseTheatrical *time.Time `json:"release_theatrical_date,omitempty"`
	ReleasePVOD       *time.Time `json:"release_pvod_date,omitempty"`
	ReleaseDisneyPlus *time.Time `json:"release_disney_plus_date,omitempty"`
	ReleaseHulu       *time.Time `json:"release_hulu_date,omitempty"`
}

// StreamingWindowDays returns the gap in days between the theatrical release
// and the earliest streaming release. When either side is missing it falls
// back to a standard 90-day window.
func (t TitleRecord) StreamingWindowDays() int {
	if t.ReleaseTheatrical == nil {
		return 90
	}
	streaming := t.ReleaseDisneyPlus
	if streaming == nil {
		streaming = t.ReleaseHulu
	}
	if streaming == nil {
		return 90
	}
	return int(streaming.Sub(*t.ReleaseTheatrical).Hours() / 24)
}
