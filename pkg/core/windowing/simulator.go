package windowing

import (
	"math"

	"magicslate/pkg/core/assumption"
	"magicslate/pkg/core/valuation"
	"magicslate/pkg/models"
)

// ScenarioResult aggregates one simulated scenario: the undiscounted value
// per window and the discounted total. Scenarios are compared on TotalNPV.
type ScenarioResult struct {
	ScenarioName string `json:"scenario_name"`

	TheatricalWindowDays int `json:"theatrical_window_days"`
	PVODWindowDays       int `json:"pvod_window_days"`
	StreamingOffsetDays  int `json:"streaming_offset_days"`
	LicenseStartDays     int `json:"license_start_days"`

	TheatricalValue float64 `json:"theatrical_value"`
	PVODValue       float64 `json:"pvod_value"`
	StreamingValue  float64 `json:"streaming_value"`
	AdValue         float64 `json:"ad_value"`
	LicenseValue    float64 `json:"license_value"`

	TotalValue float64 `json:"total_value"`
	TotalNPV   float64 `json:"total_npv"`
}

// Simulator prices windowing scenarios for titles. It leans on the
// valuation engine for the base value components and owns the
// cannibalization and discounting logic.
type Simulator struct {
	engine *valuation.Engine
	asmp   assumption.Assumptions

	// HorizonWeeks bounds every timeline; defaults to DefaultHorizonWeeks.
	HorizonWeeks int
}

// NewSimulator creates a simulator over an assumption set. The variance
// source feeds theatrical estimates exactly as in the valuation engine.
func NewSimulator(asmp assumption.Assumptions, variance valuation.VarianceSource) *Simulator {
	return &Simulator{
		engine:       valuation.NewEngine(asmp, variance),
		asmp:         asmp,
		HorizonWeeks: DefaultHorizonWeeks,
	}
}

// Simulate prices one scenario for a title and returns the per-window values
// plus the scenario NPV. The scenario is validated before any pricing; a
// malformed scenario returns an error and a zero result.
//
// The theatrical estimate includes a variance draw, so two simulations of
// the same scenario differ unless the simulator was built with a fixed
// variance source.
func (s *Simulator) Simulate(title models.TitleRecord, series models.EngagementSeries, quality models.QualityProfile, scenario Scenario) (ScenarioResult, error) {
	if err := scenario.Validate(s.HorizonWeeks); err != nil {
		return ScenarioResult{}, err
	}

	values := s.windowValues(title, series, quality, scenario)
	timeline := buildTimeline(values, scenario, s.asmp.DiscountRate, DefaultPeriodsPerYear, s.HorizonWeeks)

	return ScenarioResult{
		ScenarioName:         scenario.Name,
		TheatricalWindowDays: scenario.TheatricalWindowDays,
		PVODWindowDays:       scenario.PVODWindowDays,
		StreamingOffsetDays:  scenario.StreamingOffsetDays(),
		LicenseStartDays:     scenario.LicenseStartDays,
		TheatricalValue:      values.theatrical,
		PVODValue:            values.pvod,
		StreamingValue:       values.streaming,
		AdValue:              values.ad,
		LicenseValue:         values.license,
		TotalValue:           values.total(),
		TotalNPV:             timeline.TotalNPV,
	}, nil
}

// SimulateAll prices a set of scenarios for one title in input order.
// The first invalid scenario aborts the batch.
func (s *Simulator) SimulateAll(title models.TitleRecord, series models.EngagementSeries, quality models.QualityProfile, scenarios []Scenario) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := s.Simulate(title, series, quality, sc)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// BuildTimeline constructs the full per-period cash-flow timeline for one
// scenario. periodsPerYear controls the discount-rate conversion; pass
// DefaultPeriodsPerYear for weekly discounting.
func (s *Simulator) BuildTimeline(title models.TitleRecord, series models.EngagementSeries, quality models.QualityProfile, scenario Scenario, periodsPerYear int) (Timeline, error) {
	if err := scenario.Validate(s.HorizonWeeks); err != nil {
		return Timeline{}, err
	}
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultPeriodsPerYear
	}

	values := s.windowValues(title, series, quality, scenario)
	return buildTimeline(values, scenario, s.asmp.DiscountRate, periodsPerYear, s.HorizonWeeks), nil
}

// windowValues computes the undiscounted per-window totals for one scenario,
// applying the cannibalization schedule.
func (s *Simulator) windowValues(title models.TitleRecord, series models.EngagementSeries, quality models.QualityProfile, scenario Scenario) windowValues {
	var v windowValues

	// Theatrical: priced on the scenario's premise, not the title's release
	// history. A simulated window may open one the title never had.
	v.theatrical = s.engine.TheatricalPotential(title, quality)

	streamingOffset := scenario.StreamingOffsetDays()

	if v.theatrical > 0 && scenario.PVODWindowDays > 0 {
		v.pvod = s.engine.PVODRevenue(v.theatrical, quality, streamingOffset)
	}

	base, ad := s.engine.StreamingValue(title, quality, series.TotalHours())
	v.ad = ad

	v.streaming = base * StreamingWindowMultiplier(streamingOffset)

	if scenario.LicenseStartDays > 0 {
		v.streaming *= 1.0 - s.asmp.Windowing.LicenseCannibalizationFactor
		v.license = scenario.LicenseFee
	}

	return v
}

// StreamingWindowMultiplier scales base streaming value by the window
// length: inside 45 days engagement is undimmed, a standard 45-89 day
// window decays slightly, and longer windows decay further toward 0.85 as
// the offset approaches a year.
func StreamingWindowMultiplier(streamingOffsetDays int) float64 {
	switch {
	case streamingOffsetDays < 45:
		return 1.0
	case streamingOffsetDays < 90:
		return 0.95
	default:
		return 0.85 + (1.0-math.Min(float64(streamingOffsetDays)/365, 1.0))*0.1
	}
}

// BestScenario returns the result with the highest NPV. Ties keep the
// earliest result, so scenario order is a deterministic tie-break.
// ok is false for an empty slice.
func BestScenario(results []ScenarioResult) (best ScenarioResult, ok bool) {
	if len(results) == 0 {
		return ScenarioResult{}, false
	}
	best = results[0]
	for _, r := range results[1:] {
		if r.TotalNPV > best.TotalNPV {
			best = r
		}
	}
	return best, true
}
