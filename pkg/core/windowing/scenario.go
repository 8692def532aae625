// Package windowing simulates release-window strategies: it builds a full
// per-week cash-flow timeline across theatrical, PVOD, streaming and
// licensing windows, applies cross-window cannibalization, and discounts
// the result to net present value.
package windowing

import (
	"errors"
	"fmt"

	"magicslate/pkg/models"
)

// ErrInvalidScenario wraps all scenario validation failures.
var ErrInvalidScenario = errors.New("invalid windowing scenario")

// Scenario configures one release-window strategy for a title. The simulator
// never mutates it. All windows and offsets are in days; the license fee is
// in dollars.
type Scenario struct {
	Name    string `json:"scenario_name"`
	TitleID string `json:"title_id"`

	TheatricalWindowDays int `json:"theatrical_window_days"`
	PVODWindowDays       int `json:"pvod_window_days"`
	DisneyPlusOffsetDays int `json:"disney_plus_offset_days"`
	HuluOffsetDays       int `json:"hulu_offset_days"`

	// A positive start offset means a third-party license exists.
	LicenseStartDays int     `json:"third_party_license_start_days"`
	LicenseFee       float64 `json:"third_party_license_fee"`
}

// StreamingOffsetDays is the effective streaming start: the later of the
// two platform offsets. Cannibalization keys off this value.
func (s Scenario) StreamingOffsetDays() int {
	if s.DisneyPlusOffsetDays > s.HuluOffsetDays {
		return s.DisneyPlusOffsetDays
	}
	return s.HuluOffsetDays
}

// Validate checks the scenario against the simulated horizon before any
// simulation runs. Negative windows and windows that extend past the horizon
// are rejected outright, never silently clamped.
func (s Scenario) Validate(horizonWeeks int) error {
	if s.TheatricalWindowDays < 0 {
		return fmt.Errorf("%w: theatrical window %d days is negative", ErrInvalidScenario, s.TheatricalWindowDays)
	}
	if s.PVODWindowDays < 0 {
		return fmt.Errorf("%w: pvod window %d days is negative", ErrInvalidScenario, s.PVODWindowDays)
	}
	if s.DisneyPlusOffsetDays < 0 || s.HuluOffsetDays < 0 {
		return fmt.Errorf("%w: streaming offsets must be non-negative", ErrInvalidScenario)
	}
	if s.LicenseStartDays < 0 {
		return fmt.Errorf("%w: license start %d days is negative", ErrInvalidScenario, s.LicenseStartDays)
	}
	if s.LicenseFee < 0 {
		return fmt.Errorf("%w: license fee must be non-negative", ErrInvalidScenario)
	}

	if end := s.TheatricalWindowDays/7 + s.PVODWindowDays/7; end > horizonWeeks {
		return fmt.Errorf("%w: pvod window ends at week %d, past the %d-week horizon", ErrInvalidScenario, end, horizonWeeks)
	}
	if end := s.StreamingOffsetDays()/7 + streamingDurationWeeks; end > horizonWeeks {
		return fmt.Errorf("%w: streaming window ends at week %d, past the %d-week horizon", ErrInvalidScenario, end, horizonWeeks)
	}
	if week := s.LicenseStartDays / 7; week >= horizonWeeks {
		return fmt.Errorf("%w: license start at week %d is past the %d-week horizon", ErrInvalidScenario, week, horizonWeeks)
	}
	return nil
}

// DefaultScenarios returns the standard comparison set for a title: four
// film strategies (traditional 90-day window, short window, day-and-date,
// licensing deal) or two series strategies (exclusive streaming, license
// after one year).
func DefaultScenarios(titleID string, contentType models.ContentType) []Scenario {
	if contentType == models.ContentFilm {
		return []Scenario{
			{
				Name:                 "Traditional Theatrical",
				TitleID:              titleID,
				TheatricalWindowDays: 90,
				PVODWindowDays:       45,
				DisneyPlusOffsetDays: 90,
				HuluOffsetDays:       90,
			},
			{
				Name:                 "Short Window",
				TitleID:              titleID,
				TheatricalWindowDays: 45,
				PVODWindowDays:       30,
				DisneyPlusOffsetDays: 45,
				HuluOffsetDays:       45,
			},
			{
				Name:    "Day-and-Date Streaming",
				TitleID: titleID,
			},
			{
				Name:                 "With Licensing Deal",
				TitleID:              titleID,
				TheatricalWindowDays: 90,
				PVODWindowDays:       45,
				DisneyPlusOffsetDays: 90,
				HuluOffsetDays:       90,
				LicenseStartDays:     730,
				LicenseFee:           50_000_000,
			},
		}
	}

	return []Scenario{
		{
			Name:    "Exclusive Streaming",
			TitleID: titleID,
		},
		{
			Name:             "License After 1 Year",
			TitleID:          titleID,
			LicenseStartDays: 365,
			LicenseFee:       30_000_000,
		},
	}
}
