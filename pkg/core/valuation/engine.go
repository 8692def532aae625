// Package valuation maps engagement, quality and metadata into dollar value
// components (acquisition, retention, advertising, theatrical, PVOD) and a
// performance classification, producing the per-title scorecard.
package valuation

import (
	"math"

	"magicslate/pkg/core/assumption"
	"magicslate/pkg/core/engagement"
	"magicslate/pkg/models"
)

// Engine values titles under one assumption set. The variance source feeds
// the theatrical estimate; a nil source disables variance (multiplier 1.0).
type Engine struct {
	asmp     assumption.Assumptions
	variance VarianceSource
}

// NewEngine creates a valuation engine.
func NewEngine(asmp assumption.Assumptions, variance VarianceSource) *Engine {
	if variance == nil {
		variance = FixedVariance{}
	}
	return &Engine{asmp: asmp, variance: variance}
}

// ValueTitle computes the full scorecard for one title. An empty engagement
// series is valid and produces a zero-hours, zero-streaming-value scorecard.
func (e *Engine) ValueTitle(title models.TitleRecord, series models.EngagementSeries, quality models.QualityProfile) models.TitleScorecard {
	stats := engagement.ComputeCurveStatistics(series)

	// 1. Streaming value components
	acquisition := e.acquisitionValue(title, quality, stats.TotalHours)
	retention := e.retentionValue(title, quality, stats.TotalHours)
	ad := e.adValue(title, stats.TotalHours)

	// 2. Theatrical and PVOD windows
	theatrical := e.TheatricalValue(title, quality)
	pvod := e.PVODValue(title, quality, theatrical, title.StreamingWindowDays())

	// 3. Cost, totals, efficiency
	productionBudget := title.ProductionBudgetMillions * 1_000_000
	marketingSpend := title.MarketingSpendMillions * 1_000_000
	totalCost := productionBudget + marketingSpend

	streaming := acquisition + retention + ad
	totalValue := streaming + theatrical + pvod

	roi := 0.0
	if totalCost > 0 {
		roi = (totalValue - totalCost) / totalCost
	}

	costPerHour := math.Inf(1)
	if stats.TotalHours > 0 {
		costPerHour = totalCost / stats.TotalHours
	}

	return models.TitleScorecard{
		TitleID:     title.TitleID,
		TitleName:   title.TitleName,
		Brand:       title.Brand,
		Genre:       title.Genre,
		Platform:    title.Platform,
		ContentType: title.ContentType,
		BudgetTier:  title.BudgetTier,

		TotalHoursViewed:    stats.TotalHours,
		PeakHours:           stats.PeakHours,
		PeakWeek:            stats.PeakWeek,
		DecayRate:           stats.DecayRate,
		LongTailShare:       stats.LongTailShare,
		WeeksAboveThreshold: stats.WeeksAboveThreshold,

		CriticScore:   quality.CriticScore,
		AudienceScore: quality.AudienceScore,
		IMDBRating:    quality.IMDBRating,
		BuzzScore:     quality.BuzzScore,

		ProductionBudget: productionBudget,
		MarketingSpend:   marketingSpend,
		TotalCost:        totalCost,

		AcquisitionValue: acquisition,
		RetentionValue:   retention,
		AdValue:          ad,
		TheatricalValue:  theatrical,
		PVODValue:        pvod,
		StreamingValue:   streaming,
		TotalValue:       totalValue,

		ROI:         roi,
		CostPerHour: costPerHour,

		Classification: Classify(totalValue, totalCost, roi, costPerHour, e.asmp.Thresholds),
	}
}

// StreamingValue returns the hours-driven window components: the base
// subscription value (acquisition + retention) and the ad value. The
// windowing simulator treats these as separate cash streams.
func (e *Engine) StreamingValue(title models.TitleRecord, quality models.QualityProfile, totalHours float64) (base, ad float64) {
	base = e.acquisitionValue(title, quality, totalHours) +
		e.retentionValue(title, quality, totalHours)
	ad = e.adValue(title, totalHours)
	return base, ad
}

// acquisitionValue models new-subscriber revenue driven by viewing hours.
// Buzzy, high-audience-score titles convert disproportionately; marquee
// brands and films convert harder than catalog series.
func (e *Engine) acquisitionValue(title models.TitleRecord, quality models.QualityProfile, totalHours float64) float64 {
	if totalHours <= 0 {
		return 0
	}
	conv := e.asmp.Conversion

	hoursMillions := totalHours / 1_000_000
	newSubs := hoursMillions * conv.AcquisitionBase

	qualityFactor := 1.0
	if quality.BuzzScore > conv.BuzzThreshold {
		qualityFactor *= conv.AcquisitionQualityMultiplier
	}
	if quality.AudienceScore > conv.AudienceThreshold {
		qualityFactor *= conv.AcquisitionAudienceMultiplier
	}

	contentFactor := 1.0
	if title.ContentType == models.ContentFilm {
		contentFactor = conv.FilmAcquisitionMultiplier
	}

	newSubs *= qualityFactor * e.asmp.Brands.AcquisitionMultiplier(title.Brand) * contentFactor

	arpu := e.asmp.PlatformARPU(string(title.Platform))
	return newSubs * arpu * e.asmp.Streaming.AvgSubscriberLifetimeMonths
}

// retentionValue models churn reduction as retained subscriber-months.
// Series keep viewers coming back, so they carry a retention bonus.
func (e *Engine) retentionValue(title models.TitleRecord, quality models.QualityProfile, totalHours float64) float64 {
	if totalHours <= 0 {
		return 0
	}
	conv := e.asmp.Conversion

	hoursMillions := totalHours / 1_000_000
	months := hoursMillions * conv.RetentionBase

	qualityFactor := 1.0
	if quality.AvgCriticAudience() > conv.RetentionQualityThreshold {
		qualityFactor *= conv.RetentionQualityMultiplier
	}

	contentFactor := 1.0
	if title.ContentType == models.ContentSeries {
		contentFactor = conv.SeriesRetentionMultiplier
	}

	arpu := e.asmp.PlatformARPU(string(title.Platform))
	return months * qualityFactor * contentFactor * arpu
}

// adValue models ad-tier revenue; only the ad-supported platform earns it.
func (e *Engine) adValue(title models.TitleRecord, totalHours float64) float64 {
	if title.Platform != models.PlatformHulu || totalHours <= 0 {
		return 0
	}
	adHours := totalHours * e.asmp.Streaming.AdTierShare
	return adHours * e.asmp.Streaming.HuluAdARPUPerHour
}

// TheatricalValue estimates box-office revenue for a film that actually had
// a theatrical release. Titles without one earn nothing here; the windowing
// simulator uses TheatricalPotential instead, since a proposed scenario may
// open a window the title never had.
func (e *Engine) TheatricalValue(title models.TitleRecord, quality models.QualityProfile) float64 {
	if title.ReleaseTheatrical == nil {
		return 0
	}
	return e.TheatricalPotential(title, quality)
}

// TheatricalPotential estimates box-office revenue for a film regardless of
// release history: budget times the tier multiple, scaled by quality
// (0.5-2.0), brand appeal and the injected variance draw. Non-films and
// zero-budget titles earn nothing.
func (e *Engine) TheatricalPotential(title models.TitleRecord, quality models.QualityProfile) float64 {
	if title.ContentType != models.ContentFilm || title.ProductionBudgetMillions <= 0 {
		return 0
	}

	tierMultiplier := e.asmp.TheatricalMultiplierForTier(string(title.BudgetTier))

	// Good films overperform, bad films underperform: 0.5x to 2.0x.
	qualityFactor := 0.5 + (quality.AvgCriticAudience()/100)*1.5

	revenue := title.ProductionBudgetMillions * 1_000_000 *
		tierMultiplier * qualityFactor *
		e.asmp.Brands.TheatricalMultiplier(title.Brand) *
		e.variance.NextVariance()

	return math.Max(0, revenue)
}

// PVODValue estimates premium video-on-demand revenue for a title that had
// a PVOD release. Requires positive theatrical value; titles without a PVOD
// date earn nothing here.
func (e *Engine) PVODValue(title models.TitleRecord, quality models.QualityProfile, theatricalValue float64, streamingWindowDays int) float64 {
	if title.ReleasePVOD == nil {
		return 0
	}
	return e.PVODRevenue(theatricalValue, quality, streamingWindowDays)
}

// PVODRevenue estimates PVOD revenue as a fraction of theatrical, reduced by
// streaming-window cannibalization and scaled by quality (0.7-1.3).
func (e *Engine) PVODRevenue(theatricalValue float64, quality models.QualityProfile, streamingWindowDays int) float64 {
	if theatricalValue <= 0 {
		return 0
	}

	base := theatricalValue * e.asmp.Windowing.PVODPctOfTheatrical
	windowFactor := PVODWindowFactor(streamingWindowDays, e.asmp.Windowing.PVODCannibalizationFactor)
	qualityFactor := 0.7 + (quality.AvgCriticAudience()/100)*0.6

	return math.Max(0, base*windowFactor*qualityFactor)
}

// PVODWindowFactor applies the cannibalization schedule: streaming inside
// 45 days takes the full factor out of PVOD, 45-74 days takes half, and a
// 75-day-plus window leaves PVOD untouched.
func PVODWindowFactor(streamingWindowDays int, cannibalizationFactor float64) float64 {
	switch {
	case streamingWindowDays < 45:
		return 1.0 - cannibalizationFactor
	case streamingWindowDays < 75:
		return 1.0 - cannibalizationFactor*0.5
	default:
		return 1.0
	}
}
