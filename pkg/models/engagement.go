package models

import (
	"sort"
)

// EngagementPoint is one observed week of viewing for a title.
// WeekNumber counts from release (week 0); HoursViewed is total hours
// across all accounts for that week.
type EngagementPoint struct {
	TitleID     string  `json:"title_id"`
	WeekNumber  int     `json:"week_number"`
	HoursViewed float64 `json:"hours_viewed"`
}

// EngagementSeries is the ordered weekly viewing history for one title.
// Weeks need not be contiguous but must be unique within a series.
type EngagementSeries []EngagementPoint

// Sorted returns a copy of the series ordered by week number.
// The receiver is left untouched.
func (s EngagementSeries) Sorted() EngagementSeries {
	out := make(EngagementSeries, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeekNumber < out[j].WeekNumber
	})
	return out
}

// TotalHours sums hours viewed across all weeks.
func (s EngagementSeries) TotalHours() float64 {
	var total float64
	for _, p := range s {
		total += p.HoursViewed
	}
	return total
}
