package models

import (
	"testing"
	"time"
)

func TestBudgetTierOrdering(t *testing.T) {
	if !TierLow.Adjacent(TierMedium) || !TierMedium.Adjacent(TierLow) {
		t.Error("Low and Medium must be adjacent")
	}
	if !TierMedium.Adjacent(TierHigh) {
		t.Error("Medium and High must be adjacent")
	}
	if TierLow.Adjacent(TierHigh) {
		t.Error("Low and High are not adjacent")
	}
	if TierLow.Adjacent(TierLow) {
		t.Error("A tier is not adjacent to itself")
	}
	if BudgetTier("Ultra").Adjacent(TierHigh) {
		t.Error("Unknown tiers are never adjacent")
	}
}

func TestTierForBudget(t *testing.T) {
	cases := []struct {
		millions float64
		expected BudgetTier
	}{
		{5, TierLow},
		{19.99, TierLow},
		{20, TierMedium},
		{79.99, TierMedium},
		{80, TierHigh},
		{250, TierHigh},
	}
	for _, c := range cases {
		if got := TierForBudget(c.millions); got != c.expected {
			t.Errorf("Budget $%.2fM: expected %s, got %s", c.millions, c.expected, got)
		}
	}
}

func TestStreamingWindowDays(t *testing.T) {
	theatrical := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	streaming := theatrical.AddDate(0, 0, 45)

	title := TitleRecord{ReleaseTheatrical: &theatrical, ReleaseDisneyPlus: &streaming}
	if got := title.StreamingWindowDays(); got != 45 {
		t.Errorf("Expected 45-day window, got %d", got)
	}

	// Hulu date is used when Disney+ is absent.
	hulu := theatrical.AddDate(0, 0, 60)
	title = TitleRecord{ReleaseTheatrical: &theatrical, ReleaseHulu: &hulu}
	if got := title.StreamingWindowDays(); got != 60 {
		t.Errorf("Expected 60-day window, got %d", got)
	}

	// Missing dates fall back to the standard 90-day window.
	if got := (TitleRecord{}).StreamingWindowDays(); got != 90 {
		t.Errorf("Expected 90-day default, got %d", got)
	}
	title = TitleRecord{ReleaseTheatrical: &theatrical}
	if got := title.StreamingWindowDays(); got != 90 {
		t.Errorf("Expected 90-day default with no streaming date, got %d", got)
	}
}

func TestEngagementSeriesSorted(t *testing.T) {
	s := EngagementSeries{
		{TitleID: "t", WeekNumber: 2, HoursViewed: 1},
		{TitleID: "t", WeekNumber: 0, HoursViewed: 3},
		{TitleID: "t", WeekNumber: 1, HoursViewed: 2},
	}

	sorted := s.Sorted()
	for i, p := range sorted {
		if p.WeekNumber != i {
			t.Errorf("Expected week %d at position %d, got %d", i, i, p.WeekNumber)
		}
	}
	// The receiver is untouched.
	if s[0].WeekNumber != 2 {
		t.Error("Sorted must not mutate the receiver")
	}

	if got := s.TotalHours(); got != 6 {
		t.Errorf("Expected total 6, got %f", got)
	}
}

func TestConceptDerivedFields(t *testing.T) {
	c := NewTitleConcept{ProductionBudgetEstimate: 120, MarketingSpendEstimate: 80}
	if c.BudgetTier() != TierHigh {
		t.Errorf("Expected High tier at $120M, got %s", c.BudgetTier())
	}
	if c.TotalCost() != 200_000_000 {
		t.Errorf("Expected total cost $200M, got %f", c.TotalCost())
	}
}

func TestIPFamiliarity(t *testing.T) {
	for _, ip := range []IPFamiliarity{IPSequel, IPSpinOff, IPFranchiseCore} {
		if !ip.IsFranchise() {
			t.Errorf("%s must count as franchise IP", ip)
		}
	}
	if IPNew.IsFranchise() {
		t.Error("New IP is not franchise IP")
	}
}
