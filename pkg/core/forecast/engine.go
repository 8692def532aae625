// Package forecast projects the likely performance of a not-yet-produced
// title concept from comparable historical titles: it builds a performance
// distribution over the comps, generates bear/base/bull scenarios, and
// applies a rule-based greenlight recommendation.
package forecast

import (
	"github.com/google/uuid"

	"magicslate/pkg/core/assumption"
	"magicslate/pkg/core/comps"
	"magicslate/pkg/logging"
	"magicslate/pkg/models"
)

// DefaultTopN is the number of comparables a forecast draws on.
const DefaultTopN = 5

// Recommendation is the greenlight verdict for a concept.
type Recommendation string

const (
	StrongGreenlight      Recommendation = "Strong Greenlight"
	Greenlight            Recommendation = "Greenlight"
	ConditionalGreenlight Recommendation = "Conditional Greenlight"
	Marginal              Recommendation = "Marginal"
	Pass                  Recommendation = "Pass"

	// NoComparables marks a run that found nothing to compare against,
	// distinct from a forecast that compared and found zero value.
	NoComparables Recommendation = "No Comparables"
)

// Stats holds distribution statistics for one metric across the comps.
// Std is the sample standard deviation (zero for fewer than two comps).
type Stats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Distribution covers the three forecast metrics.
type Distribution struct {
	Hours Stats `json:"total_hours_viewed"`
	Value Stats `json:"total_value"`
	ROI   Stats `json:"roi"`
}

// Scenario is one named forecast outcome. ROI is always recomputed against
// the concept's own cost, never the comps' average cost.
type Scenario struct {
	TotalHours float64 `json:"total_hours_viewed"`
	TotalValue float64 `json:"total_value"`
	TotalCost  float64 `json:"total_cost"`
	ROI        float64 `json:"roi"`
}

// Result is the complete forecast for one concept.
type Result struct {
	ForecastID  string `json:"forecast_id"`
	ConceptName string `json:"concept_name"`

	// HasComparables distinguishes "nothing to compare" from a forecast
	// with all-zero scenarios. When false, every other analytical field
	// is zero and Recommendation is NoComparables.
	HasComparables bool `json:"has_comparables"`

	Comparables  comps.ComparableSet `json:"comps"`
	Distribution Distribution        `json:"distributions"`

	Bear Scenario `json:"bear"`
	Base Scenario `json:"base"`
	Bull Scenario `json:"bull"`

	ConceptMultiplier float64        `json:"concept_multiplier"`
	Recommendation    Recommendation `json:"recommendation"`
}

// Engine builds forecasts over one assumption set.
type Engine struct {
	asmp    assumption.Assumptions
	matcher *comps.Matcher
	topN    int
}

// NewEngine creates a forecast engine using the new-concept comparable
// weights and the default comp count.
func NewEngine(asmp assumption.Assumptions) *Engine {
	return &Engine{
		asmp:    asmp,
		matcher: comps.NewMatcher(comps.NewConceptWeights(), asmp.Brands),
		topN:    DefaultTopN,
	}
}

// Forecast projects a concept's performance from the catalog's scorecards.
// An empty catalog or an empty comparable set yields an explicit
// no-comparables result rather than a zero forecast.
func (e *Engine) Forecast(concept models.NewTitleConcept, scorecards []models.TitleScorecard) Result {
	result := Result{
		ForecastID:  uuid.NewString(),
		ConceptName: concept.ConceptName,
	}

	matches := e.matcher.FindComparables(comps.ReferenceFromConcept(concept), scorecards, e.topN)
	if len(matches) == 0 {
		logging.Logger.Warn("no comparable titles for concept", "concept", concept.ConceptName)
		result.Recommendation = NoComparables
		return result
	}

	result.HasComparables = true
	result.Comparables = matches
	result.Distribution = computeDistribution(matches)
	result.ConceptMultiplier = ConceptMultiplier(concept)

	cost := concept.TotalCost()
	result.Base = baseScenario(result.Distribution, result.ConceptMultiplier, cost)
	result.Bear = bearScenario(result.Distribution, result.ConceptMultiplier, cost)
	result.Bull = bullScenario(result.Distribution, result.ConceptMultiplier, cost)

	result.Recommendation = Recommend(result.Base.ROI, result.Bear.ROI)
	return result
}

// ConceptMultiplier blends star power and buzz potential into a single
// performance modifier: each factor spans 0.8-1.2, and the multiplier is
// their average.
func ConceptMultiplier(concept models.NewTitleConcept) float64 {
	starFactor := 0.8 + (float64(concept.StarPowerScore)/5.0)*0.4
	buzzFactor := 0.8 + (concept.BuzzPotential/100.0)*0.4
	return (starFactor + buzzFactor) / 2
}

// Recommend applies the fixed greenlight decision table to the base and
// bear ROI. First matching row wins.
func Recommend(baseROI, bearROI float64) Recommendation {
	switch {
	case baseROI > 1.0 && bearROI > 0.3:
		return StrongGreenlight
	case baseROI > 0.5 && bearROI > 0:
		return Greenlight
	case baseROI > 0.2:
		return ConditionalGreenlight
	case baseROI > 0:
		return Marginal
	default:
		return Pass
	}
}
