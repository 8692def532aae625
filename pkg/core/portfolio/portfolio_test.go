package portfolio

import (
	"math"
	"testing"

	"magicslate/pkg/models"
)

func testScorecards() []models.TitleScorecard {
	return []models.TitleScorecard{
		{
			TitleID: "a", TitleName: "A", Brand: "Marvel", Genre: "Action",
			Platform: models.PlatformDisneyPlus, ContentType: models.ContentFilm,
			TotalHoursViewed: 20_000_000, TotalCost: 100_000_000, TotalValue: 150_000_000,
			CriticScore: 80, AudienceScore: 90, BuzzScore: 85, ROI: 0.5,
			Classification: models.ClassWorkhorse,
		},
		{
			TitleID: "b", TitleName: "B", Brand: "Marvel", Genre: "Action",
			Platform: models.PlatformDisneyPlus, ContentType: models.ContentSeries,
			TotalHoursViewed: 10_000_000, TotalCost: 100_000_000, TotalValue: 150_000_000,
			CriticScore: 60, AudienceScore: 70, BuzzScore: 55, ROI: 0.5,
			Classification: models.ClassWorkhorse,
		},
		{
			TitleID: "c", TitleName: "C", Brand: "Searchlight", Genre: "Drama",
			Platform: models.PlatformHulu, ContentType: models.ContentFilm,
			TotalHoursViewed: 5_000_000, TotalCost: 20_000_000, TotalValue: 60_000_000,
			CriticScore: 95, AudienceScore: 85, BuzzScore: 40, ROI: 2.0,
			Classification: models.ClassNicheGem,
		},
	}
}

func TestAggregateByBrand(t *testing.T) {
	aggs := AggregateBy(testScorecards(), ByBrand)
	if len(aggs) != 2 {
		t.Fatalf("Expected 2 brand segments, got %d", len(aggs))
	}

	// Marvel carries 300M value vs Searchlight's 60M, so it sorts first.
	marvel := aggs[0]
	if marvel.Segment != "Marvel" {
		t.Fatalf("Expected Marvel first, got %q", marvel.Segment)
	}
	if marvel.NumTitles != 2 || marvel.TotalCost != 200_000_000 || marvel.TotalValue != 300_000_000 {
		t.Errorf("Unexpected Marvel rollup %+v", marvel)
	}

	// ROI = (300M - 200M) / 200M = 0.5
	if math.Abs(marvel.ROI-0.5) > 1e-9 {
		t.Errorf("Expected Marvel ROI 0.5, got %f", marvel.ROI)
	}
	// Avg critic = (80+60)/2 = 70
	if math.Abs(marvel.AvgCriticScore-70) > 1e-9 {
		t.Errorf("Expected avg critic 70, got %f", marvel.AvgCriticScore)
	}
	// Cost/hour = 200M / 30M hours
	if math.Abs(marvel.CostPerHour-200.0/30.0) > 1e-9 {
		t.Errorf("Expected cost per hour %f, got %f", 200.0/30.0, marvel.CostPerHour)
	}
}

func TestAggregateByZeroHours(t *testing.T) {
	cards := []models.TitleScorecard{
		{TitleID: "x", Brand: "Marvel", TotalCost: 10_000_000},
	}
	aggs := AggregateBy(cards, ByBrand)
	if !math.IsInf(aggs[0].CostPerHour, 1) {
		t.Errorf("Expected +Inf cost per hour for zero-hours segment, got %f", aggs[0].CostPerHour)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testScorecards())

	if s.TotalTitles != 3 || s.TotalHours != 35_000_000 {
		t.Errorf("Unexpected totals %+v", s)
	}
	// ROI = (360M - 220M) / 220M
	expectedROI := (360_000_000.0 - 220_000_000.0) / 220_000_000.0
	if math.Abs(s.OverallROI-expectedROI) > 1e-9 {
		t.Errorf("Expected overall ROI %f, got %f", expectedROI, s.OverallROI)
	}
	// Avg quality = (avg critic (80+60+95)/3 + avg audience (90+70+85)/3) / 2
	expectedQuality := ((80.0+60.0+95.0)/3 + (90.0+70.0+85.0)/3) / 2
	if math.Abs(s.AvgQualityScore-expectedQuality) > 1e-9 {
		t.Errorf("Expected avg quality %f, got %f", expectedQuality, s.AvgQualityScore)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Expected zero summary for empty portfolio, got %+v", got)
	}
}

func TestHHI(t *testing.T) {
	// Two equal titles: 2 * 0.5^2 * 10000 = 5000
	if got := HHI([]float64{50, 50}); math.Abs(got-5000) > 1e-9 {
		t.Errorf("Expected HHI 5000, got %f", got)
	}
	// Monopoly: 10000.
	if got := HHI([]float64{123}); math.Abs(got-10000) > 1e-9 {
		t.Errorf("Expected HHI 10000, got %f", got)
	}
	// Negative and zero values contribute nothing.
	if got := HHI([]float64{100, 0, -50}); math.Abs(got-10000) > 1e-9 {
		t.Errorf("Expected HHI 10000 ignoring non-positive values, got %f", got)
	}
	if got := HHI(nil); got != 0 {
		t.Errorf("Expected HHI 0 for empty input, got %f", got)
	}

	// HHI stays within [0, 10000] for any mix.
	if got := HHI([]float64{1, 2, 3, 4, 5, 100}); got < 0 || got > 10000 {
		t.Errorf("HHI %f out of range", got)
	}
}

func TestConcentration(t *testing.T) {
	// Values 150M, 150M, 60M => shares 150/360, 150/360, 60/360.
	m := Concentration(testScorecards(), 2)

	s1 := 150.0 / 360.0
	s3 := 60.0 / 360.0
	expectedHHI := (s1*s1 + s1*s1 + s3*s3) * 10000
	if math.Abs(m.HHI-expectedHHI) > 1e-6 {
		t.Errorf("Expected HHI %f, got %f", expectedHHI, m.HHI)
	}

	if len(m.TopTitles) != 2 {
		t.Fatalf("Expected 2 top titles, got %d", len(m.TopTitles))
	}
	// Equal values tie-break on input order: a before b.
	if m.TopTitles[0].TitleID != "a" || m.TopTitles[1].TitleID != "b" {
		t.Errorf("Unexpected top titles %+v", m.TopTitles)
	}
	if math.Abs(m.TopNShare-2*s1) > 1e-9 {
		t.Errorf("Expected top-2 share %f, got %f", 2*s1, m.TopNShare)
	}
}

func TestROIQuartiles(t *testing.T) {
	cards := make([]models.TitleScorecard, 5)
	for i, roi := range []float64{5, 1, 3, 2, 4} {
		cards[i] = models.TitleScorecard{ROI: roi}
	}

	// Sorted ROI {1,2,3,4,5}: q1=2, median=3, q3=4.
	q1, med, q3 := ROIQuartiles(cards)
	if q1 != 2 || med != 3 || q3 != 4 {
		t.Errorf("Expected quartiles 2/3/4, got %f/%f/%f", q1, med, q3)
	}

	// Interpolation: {1, 2}: median = 1.5.
	_, med, _ = ROIQuartiles([]models.TitleScorecard{{ROI: 1}, {ROI: 2}})
	if math.Abs(med-1.5) > 1e-9 {
		t.Errorf("Expected interpolated median 1.5, got %f", med)
	}

	q1, med, q3 = ROIQuartiles(nil)
	if q1 != 0 || med != 0 || q3 != 0 {
		t.Error("Expected zero quartiles for empty portfolio")
	}
}

func TestOverUnderInvestment(t *testing.T) {
	cards := []models.TitleScorecard{
		{TitleID: "a", Brand: "Heavy", TotalCost: 80_000_000, TotalValue: 20_000_000},
		{TitleID: "b", Brand: "Light", TotalCost: 20_000_000, TotalValue: 80_000_000},
	}

	gaps := OverUnderInvestment(cards, ByBrand, 0.20)
	if len(gaps) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(gaps))
	}

	byName := map[string]InvestmentGap{}
	for _, g := range gaps {
		byName[g.Segment] = g
	}

	// Heavy: 80% of cost, 20% of value => gap +0.6, over-invested.
	heavy := byName["Heavy"]
	if math.Abs(heavy.Gap-0.6) > 1e-9 || heavy.Status != OverInvested {
		t.Errorf("Expected Heavy over-invested with gap 0.6, got %+v", heavy)
	}
	light := byName["Light"]
	if math.Abs(light.Gap+0.6) > 1e-9 || light.Status != UnderInvested {
		t.Errorf("Expected Light under-invested with gap -0.6, got %+v", light)
	}

	// Within the threshold everything reads balanced.
	balanced := OverUnderInvestment([]models.TitleScorecard{
		{TitleID: "a", Brand: "X", TotalCost: 55_000_000, TotalValue: 50_000_000},
		{TitleID: "b", Brand: "Y", TotalCost: 45_000_000, TotalValue: 50_000_000},
	}, ByBrand, 0.20)
	for _, g := range balanced {
		if g.Status != Balanced {
			t.Errorf("Expected balanced segment, got %+v", g)
		}
	}
}

func TestClassificationDistribution(t *testing.T) {
	dist := ClassificationDistribution(testScorecards())
	if len(dist) != 2 {
		t.Fatalf("Expected 2 classification buckets, got %d", len(dist))
	}

	// Workhorses carry 300M value and sort first.
	if dist[0].Classification != models.ClassWorkhorse || dist[0].NumTitles != 2 {
		t.Errorf("Unexpected first bucket %+v", dist[0])
	}
	if math.Abs(dist[0].AvgROI-0.5) > 1e-9 {
		t.Errorf("Expected workhorse avg ROI 0.5, got %f", dist[0].AvgROI)
	}
}
