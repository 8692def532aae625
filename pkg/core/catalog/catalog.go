// Package catalog owns the keyed lookups joining titles, engagement series
// and quality profiles by title id, and runs catalog-wide scorecard
// computation. The core never assumes any storage beyond these in-memory
// maps; loading tables into them is the calling layer's job.
package catalog

import (
	"fmt"

	"magicslate/pkg/models"
)

// NotFoundError reports a lookup for an unknown title id. Unknown ids are
// an error, never a silent default.
type NotFoundError struct {
	TitleID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("title %q not found in catalog", e.TitleID)
}

// Catalog is the keyed store for one analysis run. It is not safe for
// concurrent mutation; load it fully, then read from any goroutine.
type Catalog struct {
	titles     map[string]models.TitleRecord
	engagement map[string]models.EngagementSeries
	quality    map[string]models.QualityProfile

	// Insertion order keeps iteration and tie-breaking deterministic.
	order []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		titles:     make(map[string]models.TitleRecord),
		engagement: make(map[string]models.EngagementSeries),
		quality:    make(map[string]models.QualityProfile),
	}
}

// AddTitle registers a title record. Re-adding an id replaces the record
// but keeps its original position.
func (c *Catalog) AddTitle(t models.TitleRecord) {
	if _, exists := c.titles[t.TitleID]; !exists {
		c.order = append(c.order, t.TitleID)
	}
	c.titles[t.TitleID] = t
}

// AddEngagement appends engagement points to their titles' series.
// Points for unknown titles are rejected.
func (c *Catalog) AddEngagement(points ...models.EngagementPoint) error {
	for _, p := range points {
		if _, ok := c.titles[p.TitleID]; !ok {
			return &NotFoundError{TitleID: p.TitleID}
		}
		c.engagement[p.TitleID] = append(c.engagement[p.TitleID], p)
	}
	return nil
}

// SetQuality registers a title's quality profile.
func (c *Catalog) SetQuality(q models.QualityProfile) error {
	if _, ok := c.titles[q.TitleID]; !ok {
		return &NotFoundError{TitleID: q.TitleID}
	}
	c.quality[q.TitleID] = q
	return nil
}

// Title looks up one title record.
func (c *Catalog) Title(id string) (models.TitleRecord, error) {
	t, ok := c.titles[id]
	if !ok {
		return models.TitleRecord{}, &NotFoundError{TitleID: id}
	}
	return t, nil
}

// Engagement returns a title's viewing series sorted by week. A known title
// with no recorded weeks yields an empty series, which is valid input
// everywhere downstream.
func (c *Catalog) Engagement(id string) (models.EngagementSeries, error) {
	if _, ok := c.titles[id]; !ok {
		return nil, &NotFoundError{TitleID: id}
	}
	return c.engagement[id].Sorted(), nil
}

// Quality returns a title's quality profile.
func (c *Catalog) Quality(id string) (models.QualityProfile, error) {
	q, ok := c.quality[id]
	if !ok {
		return models.QualityProfile{}, &NotFoundError{TitleID: id}
	}
	return q, nil
}

// Titles returns all title records in insertion order.
func (c *Catalog) Titles() []models.TitleRecord {
	out := make([]models.TitleRecord, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.titles[id])
	}
	return out
}

// Len is the number of titles in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
