// Package comps scores catalog titles for similarity against a reference
// (an existing title or a new concept) and selects the top-N comparables
// used as performance proxies.
package comps

import (
	"math"
	"sort"

	"magicslate/pkg/core/assumption"
	"magicslate/pkg/models"
)

// Weights configures the additive similarity score. The two call sites
// historically weight genre and content type differently; both sets are
// preserved as-is rather than unified, since neither is obviously right.
type Weights struct {
	Brand        float64
	Genre        float64
	ContentType  float64
	ExactTier    float64
	AdjacentTier float64

	// Maximum score of the continuous hours-similarity term,
	// 2 * min(hoursA, hoursB) / max(hoursA, hoursB). Zero disables the
	// term; a new concept has no observed hours to compare.
	HoursRatioMax float64

	// Bonus for franchise-brand candidates when the reference carries
	// sequel, spin-off or franchise-core IP.
	FranchiseBonus float64
}

// ExistingTitleWeights scores comparables for an existing catalog title.
func ExistingTitleWeights() Weights {
	return Weights{
		Brand:          5,
		Genre:          4,
		ContentType:    3,
		ExactTier:      3,
		AdjacentTier:   1,
		HoursRatioMax:  2,
		FranchiseBonus: 2,
	}
}

// NewConceptWeights scores comparables for a not-yet-produced concept.
func NewConceptWeights() Weights {
	return Weights{
		Brand:          5,
		Genre:          3,
		ContentType:    4,
		ExactTier:      3,
		AdjacentTier:   1,
		HoursRatioMax:  0,
		FranchiseBonus: 2,
	}
}

// Reference is the profile similarity is scored against.
type Reference struct {
	Brand       string
	Genre       string
	ContentType models.ContentType
	BudgetTier  models.BudgetTier

	// TotalHours feeds the continuous hours term; 0 for concepts.
	TotalHours float64

	IPFamiliarity models.IPFamiliarity

	// ExcludeTitleID drops the reference title itself from the candidates.
	ExcludeTitleID string
}

// ReferenceFromScorecard builds a reference for existing-title matching.
func ReferenceFromScorecard(sc models.TitleScorecard) Reference {
	return Reference{
		Brand:          sc.Brand,
		Genre:          sc.Genre,
		ContentType:    sc.ContentType,
		BudgetTier:     sc.BudgetTier,
		TotalHours:     sc.TotalHoursViewed,
		ExcludeTitleID: sc.TitleID,
	}
}

// ReferenceFromConcept builds a reference for new-concept matching.
// The concept's tier is derived from its budget estimate.
func ReferenceFromConcept(c models.NewTitleConcept) Reference {
	return Reference{
		Brand:         c.Brand,
		Genre:         c.Genre,
		ContentType:   c.ContentType,
		BudgetTier:    c.BudgetTier(),
		IPFamiliarity: c.IPFamiliarity,
	}
}

// Comparable is one scored candidate.
type Comparable struct {
	Scorecard models.TitleScorecard `json:"scorecard"`
	Score     float64               `json:"similarity_score"`
}

// ComparableSet is a ranked comparable list, descending by score.
type ComparableSet []Comparable

// Matcher scores candidates under one weight set. Brands supplies the
// franchise-brand list for the IP bonus.
type Matcher struct {
	Weights Weights
	Brands  assumption.Brands
}

// NewMatcher creates a matcher.
func NewMatcher(w Weights, brands assumption.Brands) *Matcher {
	return &Matcher{Weights: w, Brands: brands}
}

// FindComparables scores every catalog scorecard against the reference and
// returns the top-N by score. The sort is stable, so equal-score candidates
// keep their catalog order, which is the documented tie-break.
func (m *Matcher) FindComparables(ref Reference, catalog []models.TitleScorecard, topN int) ComparableSet {
	if topN <= 0 {
		return nil
	}

	scored := make(ComparableSet, 0, len(catalog))
	for _, sc := range catalog {
		if ref.ExcludeTitleID != "" && sc.TitleID == ref.ExcludeTitleID {
			continue
		}
		scored = append(scored, Comparable{Scorecard: sc, Score: m.Score(ref, sc)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// Score computes the additive similarity of one candidate to the reference.
func (m *Matcher) Score(ref Reference, sc models.TitleScorecard) float64 {
	w := m.Weights

	var score float64
	if sc.Brand == ref.Brand {
		score += w.Brand
	}
	if sc.Genre == ref.Genre {
		score += w.Genre
	}
	if sc.ContentType == ref.ContentType {
		score += w.ContentType
	}

	if sc.BudgetTier == ref.BudgetTier {
		score += w.ExactTier
	} else if sc.BudgetTier.Adjacent(ref.BudgetTier) {
		score += w.AdjacentTier
	}

	if w.HoursRatioMax > 0 && ref.TotalHours > 0 && sc.TotalHoursViewed > 0 {
		ratio := math.Min(ref.TotalHours, sc.TotalHoursViewed) /
			math.Max(ref.TotalHours, sc.TotalHoursViewed)
		score += w.HoursRatioMax * ratio
	}

	if ref.IPFamiliarity.IsFranchise() && m.Brands.IsFranchiseBrand(sc.Brand) {
		score += w.FranchiseBonus
	}

	return score
}
