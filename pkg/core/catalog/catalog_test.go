package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicslate/pkg/core/assumption"
	"magicslate/pkg/core/valuation"
	"magicslate/pkg/models"
)

func testCatalog(t *testing.T, n int) *Catalog {
	t.Helper()
	c := New()
	brands := []string{"Marvel", "Pixar", "Searchlight", "Star Wars"}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		ct := models.ContentSeries
		if i%2 == 0 {
			ct = models.ContentFilm
		}
		c.AddTitle(models.TitleRecord{
			TitleID:                  id,
			TitleName:                "Title " + id,
			Brand:                    brands[i%len(brands)],
			Genre:                    "Action",
			Platform:                 models.PlatformDisneyPlus,
			ContentType:              ct,
			BudgetTier:               models.TierMedium,
			ProductionBudgetMillions: float64(30 + 10*i),
			MarketingSpendMillions:   20,
		})
		require.NoError(t, c.AddEngagement(
			models.EngagementPoint{TitleID: id, WeekNumber: 0, HoursViewed: float64(5_000_000 + i*1_000_000)},
			models.EngagementPoint{TitleID: id, WeekNumber: 1, HoursViewed: float64(3_000_000 + i*500_000)},
			models.EngagementPoint{TitleID: id, WeekNumber: 2, HoursViewed: 1_000_000},
		))
		require.NoError(t, c.SetQuality(models.QualityProfile{
			TitleID:       id,
			CriticScore:   float64(60 + i*5),
			AudienceScore: float64(65 + i*5),
			BuzzScore:     float64(50 + i*10),
		}))
	}
	return c
}

func TestCatalogLookups(t *testing.T) {
	c := testCatalog(t, 3)
	require.Equal(t, 3, c.Len())

	title, err := c.Title("a")
	require.NoError(t, err)
	assert.Equal(t, "Title a", title.TitleName)

	series, err := c.Engagement("b")
	require.NoError(t, err)
	assert.Len(t, series, 3)
	// Sorted by week regardless of insertion order.
	assert.Equal(t, 0, series[0].WeekNumber)

	_, err = c.Title("missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.TitleID)
}

func TestCatalogRejectsOrphanRows(t *testing.T) {
	c := New()
	c.AddTitle(models.TitleRecord{TitleID: "a"})

	err := c.AddEngagement(models.EngagementPoint{TitleID: "ghost", WeekNumber: 0, HoursViewed: 1})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = c.SetQuality(models.QualityProfile{TitleID: "ghost"})
	require.ErrorAs(t, err, &notFound)
}

func TestCatalogEmptyEngagementIsValid(t *testing.T) {
	c := New()
	c.AddTitle(models.TitleRecord{TitleID: "a"})

	series, err := c.Engagement("a")
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestCatalogTitlesInsertionOrder(t *testing.T) {
	c := New()
	for _, id := range []string{"z", "a", "m"} {
		c.AddTitle(models.TitleRecord{TitleID: id})
	}
	// Re-adding keeps the original position.
	c.AddTitle(models.TitleRecord{TitleID: "z", TitleName: "updated"})

	titles := c.Titles()
	require.Len(t, titles, 3)
	assert.Equal(t, "z", titles[0].TitleID)
	assert.Equal(t, "updated", titles[0].TitleName)
	assert.Equal(t, "a", titles[1].TitleID)
	assert.Equal(t, "m", titles[2].TitleID)
}

func TestScorecardsDeterministicAcrossWorkerCounts(t *testing.T) {
	c := testCatalog(t, 8)
	asmp := assumption.Default()

	serial, err := c.Scorecards(asmp, 42, 1)
	require.NoError(t, err)
	parallel, err := c.Scorecards(asmp, 42, 4)
	require.NoError(t, err)

	// Variance is seeded per title index, so worker count and scheduling
	// cannot change any result.
	assert.Equal(t, serial, parallel)

	// A different seed moves the theatrical estimates.
	reseeded, err := c.Scorecards(asmp, 7, 4)
	require.NoError(t, err)
	assert.NotEqual(t, serial, reseeded)
}

func TestScorecardsOrderMatchesCatalog(t *testing.T) {
	c := testCatalog(t, 5)

	cards, err := c.Scorecards(assumption.Default(), 1, 3)
	require.NoError(t, err)
	require.Len(t, cards, 5)
	for i, title := range c.Titles() {
		assert.Equal(t, title.TitleID, cards[i].TitleID)
	}
}

func TestScorecardsMissingQualityFailsCleanly(t *testing.T) {
	c := testCatalog(t, 2)
	c.AddTitle(models.TitleRecord{TitleID: "noq"})

	_, err := c.Scorecards(assumption.Default(), 1, 2)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "noq", notFound.TitleID)
}

func TestScorecardSingleTitle(t *testing.T) {
	c := testCatalog(t, 2)

	sc, err := c.Scorecard("a", assumption.Default(), valuation.FixedVariance{})
	require.NoError(t, err)
	assert.Equal(t, "a", sc.TitleID)
	assert.Greater(t, sc.TotalHoursViewed, 0.0)

	_, err = c.Scorecard("missing", assumption.Default(), valuation.FixedVariance{})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
