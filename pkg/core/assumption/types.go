// Package assumption defines the economic assumptions that drive every
// calculation in the core. The assumptions are an explicit value threaded
// through each call; nothing reads from process-wide state, so a caller can
// run the same catalog under two assumption sets side by side (e.g. for a
// discount-rate sensitivity slider).
package assumption

import (
	"fmt"
)

// =============================================================================
// STREAMING ECONOMICS
// =============================================================================

// StreamingEconomics holds the platform revenue constants.
type StreamingEconomics struct {
	DisneyPlusARPU    float64 `json:"disney_plus_arpu" yaml:"disney_plus_arpu"`           // USD per month
	HuluARPU          float64 `json:"hulu_arpu" yaml:"hulu_arpu"`                         // USD per month
	HuluAdARPUPerHour float64 `json:"hulu_ad_arpu_per_hour" yaml:"hulu_ad_arpu_per_hour"` // USD per ad-supported hour
	AdTierShare       float64 `json:"ad_tier_share" yaml:"ad_tier_share"`                 // fraction of Hulu hours on the ad tier

	// New subscribers are assumed to stay this many months on average,
	// converting acquisition into lifetime subscription revenue.
	AvgSubscriberLifetimeMonths float64 `json:"avg_subscriber_lifetime_months" yaml:"avg_subscriber_lifetime_months"`
}

// =============================================================================
// ENGAGEMENT TO VALUE CONVERSION
// =============================================================================

// Conversion holds the factors that turn hours viewed into subscriber value.
type Conversion struct {
	AcquisitionBase float64 `json:"acquisition_base" yaml:"acquisition_base"` // new subs per 1M hours
	RetentionBase   float64 `json:"retention_base" yaml:"retention_base"`     // retained sub-months per 1M hours

	// Quality gates: buzz above BuzzThreshold applies the acquisition quality
	// multiplier; audience above AudienceThreshold applies a further bump.
	BuzzThreshold                 float64 `json:"buzz_threshold" yaml:"buzz_threshold"`
	AudienceThreshold             float64 `json:"audience_threshold" yaml:"audience_threshold"`
	AcquisitionQualityMultiplier  float64 `json:"acquisition_quality_multiplier" yaml:"acquisition_quality_multiplier"`
	AcquisitionAudienceMultiplier float64 `json:"acquisition_audience_multiplier" yaml:"acquisition_audience_multiplier"`

	// Retention uses the critic/audience midpoint against its own threshold.
	RetentionQualityThreshold  float64 `json:"retention_quality_threshold" yaml:"retention_quality_threshold"`
	RetentionQualityMultiplier float64 `json:"retention_quality_multiplier" yaml:"retention_quality_multiplier"`

	// Films drive acquisition harder; series hold subscribers longer.
	FilmAcquisitionMultiplier float64 `json:"film_acquisition_multiplier" yaml:"film_acquisition_multiplier"`
	SeriesRetentionMultiplier float64 `json:"series_retention_multiplier" yaml:"series_retention_multiplier"`
}

// =============================================================================
// WINDOWING & LICENSING
// =============================================================================

// Windowing holds cannibalization factors and theatrical/PVOD economics.
type Windowing struct {
	PVODCannibalizationFactor    float64 `json:"pvod_cannibalization_factor" yaml:"pvod_cannibalization_factor"`
	LicenseCannibalizationFactor float64 `json:"license_cannibalization_factor" yaml:"license_cannibalization_factor"`

	// Box office as a multiple of production budget, by tier.
	TheatricalMultiplierByTier  map[string]float64 `json:"theatrical_multiplier_by_tier" yaml:"theatrical_multiplier_by_tier"`
	DefaultTheatricalMultiplier float64            `json:"default_theatrical_multiplier" yaml:"default_theatrical_multiplier"`

	PVODPctOfTheatrical float64 `json:"pvod_pct_of_theatrical" yaml:"pvod_pct_of_theatrical"`
}

// =============================================================================
// BRAND MULTIPLIERS
// =============================================================================

// Brands holds the per-brand lookup tables. A brand absent from a table
// gets a 1.0 multiplier.
type Brands struct {
	AcquisitionMultipliers map[string]float64 `json:"acquisition_multipliers" yaml:"acquisition_multipliers"`
	TheatricalMultipliers  map[string]float64 `json:"theatrical_multipliers" yaml:"theatrical_multipliers"`

	// Franchise brands earn the comparable-matching IP bonus.
	FranchiseBrands []string `json:"franchise_brands" yaml:"franchise_brands"`
}

// IsFranchiseBrand reports whether the brand is in the franchise list.
func (b Brands) IsFranchiseBrand(brand string) bool {
	for _, fb := range b.FranchiseBrands {
		if fb == brand {
			return true
		}
	}
	return false
}

// AcquisitionMultiplier returns the acquisition brand multiplier (default 1.0).
func (b Brands) AcquisitionMultiplier(brand string) float64 {
	if m, ok := b.AcquisitionMultipliers[brand]; ok {
		return m
	}
	return 1.0
}

// TheatricalMultiplier returns the theatrical brand multiplier (default 1.0).
func (b Brands) TheatricalMultiplier(brand string) float64 {
	if m, ok := b.TheatricalMultipliers[brand]; ok {
		return m
	}
	return 1.0
}

// =============================================================================
// CLASSIFICATION THRESHOLDS
// =============================================================================

// Thresholds holds the title-classification decision constants.
// All money figures are in dollars.
type Thresholds struct {
	TentpoleMinBudget float64 `json:"tentpole_min_budget" yaml:"tentpole_min_budget"`
	TentpoleMinValue  float64 `json:"tentpole_min_value" yaml:"tentpole_min_value"`

	WorkhorseMinROI    float64 `json:"workhorse_min_roi" yaml:"workhorse_min_roi"`
	WorkhorseMaxROI    float64 `json:"workhorse_max_roi" yaml:"workhorse_max_roi"`
	WorkhorseMinBudget float64 `json:"workhorse_min_budget" yaml:"workhorse_min_budget"`

	NicheMaxBudget      float64 `json:"niche_max_budget" yaml:"niche_max_budget"`
	NicheMinROI         float64 `json:"niche_min_roi" yaml:"niche_min_roi"`
	NicheMaxCostPerHour float64 `json:"niche_max_cost_per_hour" yaml:"niche_max_cost_per_hour"`

	UnderperformerMaxROI float64 `json:"underperformer_max_roi" yaml:"underperformer_max_roi"`
	AcceptableMinROI     float64 `json:"acceptable_min_roi" yaml:"acceptable_min_roi"`
}

// =============================================================================
// ASSUMPTIONS (TOP-LEVEL CONTAINER)
// =============================================================================

// Assumptions is the full set of economic constants for one analysis run.
type Assumptions struct {
	Streaming  StreamingEconomics `json:"streaming" yaml:"streaming"`
	Conversion Conversion         `json:"conversion" yaml:"conversion"`
	Windowing  Windowing          `json:"windowing" yaml:"windowing"`
	Brands     Brands             `json:"brands" yaml:"brands"`
	Thresholds Thresholds         `json:"thresholds" yaml:"thresholds"`

	// Annual discount rate for NPV, e.g. 0.10 for 10%.
	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate"`

	// Cost-share vs value-share gap beyond which a portfolio segment is
	// flagged over- or under-invested. Tunable, not a law.
	InvestmentGapThreshold float64 `json:"investment_gap_threshold" yaml:"investment_gap_threshold"`
}

// PlatformARPU returns the monthly ARPU for a platform. Unknown platforms
// fall back to the Disney+ rate.
func (a Assumptions) PlatformARPU(platform string) float64 {
	switch platform {
	case "Hulu":
		return a.Streaming.HuluARPU
	default:
		return a.Streaming.DisneyPlusARPU
	}
}

// TheatricalMultiplierForTier returns the box-office multiple for a budget tier.
func (a Assumptions) TheatricalMultiplierForTier(tier string) float64 {
	if m, ok := a.Windowing.TheatricalMultiplierByTier[tier]; ok {
		return m
	}
	return a.Windowing.DefaultTheatricalMultiplier
}

// Validate checks the assumptions for values that would make every
// downstream calculation meaningless.
func (a Assumptions) Validate() error {
	if a.Streaming.DisneyPlusARPU <= 0 || a.Streaming.HuluARPU <= 0 {
		return fmt.Errorf("platform ARPU must be positive")
	}
	if a.DiscountRate < 0 || a.DiscountRate >= 1 {
		return fmt.Errorf("discount rate %.4f out of range [0, 1)", a.DiscountRate)
	}
	if a.Streaming.AdTierShare < 0 || a.Streaming.AdTierShare > 1 {
		return fmt.Errorf("ad tier share %.4f out of range [0, 1]", a.Streaming.AdTierShare)
	}
	if a.Windowing.PVODCannibalizationFactor < 0 || a.Windowing.PVODCannibalizationFactor > 1 {
		return fmt.Errorf("pvod cannibalization factor %.4f out of range [0, 1]", a.Windowing.PVODCannibalizationFactor)
	}
	if a.Windowing.LicenseCannibalizationFactor < 0 || a.Windowing.LicenseCannibalizationFactor > 1 {
		return fmt.Errorf("license cannibalization factor %.4f out of range [0, 1]", a.Windowing.LicenseCannibalizationFactor)
	}
	if a.InvestmentGapThreshold <= 0 {
		return fmt.Errorf("investment gap threshold must be positive")
	}
	return nil
}

// Default returns the standard assumption set.
func Default() Assumptions {
	return Assumptions{
		Streaming: StreamingEconomics{
			DisneyPlusARPU:              7.99,
			HuluARPU:                    12.99,
			HuluAdARPUPerHour:           0.05,
			AdTierShare:                 0.30,
			AvgSubscriberLifetimeMonths: 18,
		},
		Conversion: Conversion{
			AcquisitionBase:               50,
			RetentionBase:                 100,
			BuzzThreshold:                 70,
			AudienceThreshold:             80,
			AcquisitionQualityMultiplier:  1.5,
			AcquisitionAudienceMultiplier: 1.2,
			RetentionQualityThreshold:     75,
			RetentionQualityMultiplier:    1.3,
			FilmAcquisitionMultiplier:     1.2,
			SeriesRetentionMultiplier:     1.3,
		},
		Windowing: Windowing{
			PVODCannibalizationFactor:    0.30,
			LicenseCannibalizationFactor: 0.25,
			TheatricalMultiplierByTier: map[string]float64{
				"Low":    2.5,
				"Medium": 3.0,
				"High":   3.5,
			},
			DefaultTheatricalMultiplier: 3.0,
			PVODPctOfTheatrical:         0.15,
		},
		Brands: Brands{
			AcquisitionMultipliers: map[string]float64{
				"Marvel":    1.5,
				"Star Wars": 1.4,
				"Pixar":     1.3,
			},
			TheatricalMultipliers: map[string]float64{
				"Marvel":           1.8,
				"Star Wars":        1.6,
				"Pixar":            1.4,
				"Disney Animation": 1.2,
			},
			FranchiseBrands: []string{"Marvel", "Star Wars", "Pixar"},
		},
		Thresholds: Thresholds{
			TentpoleMinBudget:    80_000_000,
			TentpoleMinValue:     200_000_000,
			WorkhorseMinROI:      0.5,
			WorkhorseMaxROI:      2.0,
			WorkhorseMinBudget:   10_000_000,
			NicheMaxBudget:       20_000_000,
			NicheMinROI:          1.5,
			NicheMaxCostPerHour:  5.0,
			UnderperformerMaxROI: 0.0,
			AcceptableMinROI:     0.3,
		},
		DiscountRate:           0.10,
		InvestmentGapThreshold: 0.20,
	}
}
