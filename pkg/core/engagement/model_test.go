package engagement

import (
	"math"
	"testing"

	"magicslate/pkg/models"
)

func TestFitDecayModelPerfectFit(t *testing.T) {
	// hours(w) = exp(10 - 0.5w) - 1 is exactly log-linear from the peak at
	// week 0, so the refit reproduces every observation and R-squared is 1.
	s := make(models.EngagementSeries, 6)
	for w := 0; w < 6; w++ {
		s[w] = models.EngagementPoint{
			TitleID:     "t1",
			WeekNumber:  w,
			HoursViewed: math.Exp(10-0.5*float64(w)) - 1,
		}
	}

	predicted, r2 := FitDecayModel(s)
	if len(predicted) != 6 {
		t.Fatalf("Expected 6 predicted points, got %d", len(predicted))
	}
	for i, p := range predicted {
		if math.Abs(p.Hours-s[i].HoursViewed) > 1e-6*s[i].HoursViewed {
			t.Errorf("Week %d: expected %f, got %f", p.Week, s[i].HoursViewed, p.Hours)
		}
	}
	if math.Abs(r2-1.0) > 1e-9 {
		t.Errorf("Expected R-squared 1.0, got %f", r2)
	}
}

func TestFitDecayModelPrePeakEcho(t *testing.T) {
	// Weeks before the peak are reproduced as observed; the model only
	// describes the decay phase.
	s := models.EngagementSeries{
		{TitleID: "t1", WeekNumber: 0, HoursViewed: 1_000_000},
		{TitleID: "t1", WeekNumber: 1, HoursViewed: 5_000_000},
		{TitleID: "t1", WeekNumber: 2, HoursViewed: 3_000_000},
		{TitleID: "t1", WeekNumber: 3, HoursViewed: 2_000_000},
	}

	predicted, _ := FitDecayModel(s)
	if predicted[0].Hours != 1_000_000 {
		t.Errorf("Expected pre-peak week echoed at 1M, got %f", predicted[0].Hours)
	}
}

func TestFitDecayModelDegenerate(t *testing.T) {
	// A single week cannot support a fit: flat echo, R-squared 0.
	s := models.EngagementSeries{
		{TitleID: "t1", WeekNumber: 0, HoursViewed: 4_000_000},
	}
	predicted, r2 := FitDecayModel(s)
	if len(predicted) != 1 || predicted[0].Hours != 4_000_000 {
		t.Errorf("Expected flat echo, got %+v", predicted)
	}
	if r2 != 0 {
		t.Errorf("Expected R-squared 0 for degenerate fit, got %f", r2)
	}

	// Empty series.
	predicted, r2 = FitDecayModel(nil)
	if predicted != nil || r2 != 0 {
		t.Errorf("Expected nil model for empty series, got %+v r2=%f", predicted, r2)
	}
}

func TestRSquaredBounds(t *testing.T) {
	// A noisy series still yields R-squared inside [0, 1].
	s := series(1_000_000, 9_000_000, 500_000, 7_000_000, 200_000, 4_000_000)
	_, r2 := FitDecayModel(s)
	if r2 < 0 || r2 > 1 {
		t.Errorf("Expected R-squared in [0,1], got %f", r2)
	}
}
