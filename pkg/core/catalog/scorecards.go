package catalog

import (
	"runtime"
	"sync"

	"magicslate/pkg/core/assumption"
	"magicslate/pkg/core/valuation"
	"magicslate/pkg/logging"
	"magicslate/pkg/models"
)

// Scorecard values a single title under the given assumptions.
func (c *Catalog) Scorecard(id string, asmp assumption.Assumptions, variance valuation.VarianceSource) (models.TitleScorecard, error) {
	title, err := c.Title(id)
	if err != nil {
		return models.TitleScorecard{}, err
	}
	series, err := c.Engagement(id)
	if err != nil {
		return models.TitleScorecard{}, err
	}
	quality, err := c.Quality(id)
	if err != nil {
		return models.TitleScorecard{}, err
	}

	return valuation.NewEngine(asmp, variance).ValueTitle(title, series, quality), nil
}

// Scorecards values the whole catalog, fanning out across workers. Titles
// are independent, so the only coordination is collecting results into the
// output slice, which stays in catalog insertion order.
//
// Each title gets its own variance source seeded from seed plus the title's
// catalog index, so results are reproducible for a given seed and identical
// regardless of scheduling or worker count.
func (c *Catalog) Scorecards(asmp assumption.Assumptions, seed int64, workers int) ([]models.TitleScorecard, error) {
	return c.ScorecardsWithVariance(asmp, func(i int) valuation.VarianceSource {
		return valuation.DefaultVariance(seed + int64(i))
	}, workers)
}

// ScorecardsWithVariance is Scorecards with caller-controlled variance
// sources; tests pass a fixed source to get fully deterministic values.
func (c *Catalog) ScorecardsWithVariance(asmp assumption.Assumptions, varianceFor func(titleIndex int) valuation.VarianceSource, workers int) ([]models.TitleScorecard, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := len(c.order)
	logging.Logger.Debug("computing catalog scorecards", "titles", n, "workers", workers)

	// Every title must have a quality profile before we spin anything up;
	// a partial result set is worse than a clean error.
	for _, id := range c.order {
		if _, ok := c.quality[id]; !ok {
			return nil, &NotFoundError{TitleID: id}
		}
	}

	results := make([]models.TitleScorecard, n)
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				id := c.order[i]
				engine := valuation.NewEngine(asmp, varianceFor(i))
				results[i] = engine.ValueTitle(c.titles[id], c.engagement[id].Sorted(), c.quality[id])
			}
		}()
	}

	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results, nil
}
