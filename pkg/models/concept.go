package models

// IPFamiliarity describes how established a concept's intellectual property is.
type IPFamiliarity string

const (
	IPNew           IPFamiliarity = "New IP"
	IPSequel        IPFamiliarity = "Sequel"
	IPSpinOff       IPFamiliarity = "Spin-off"
	IPFranchiseCore IPFamiliarity = "Franchise Core"
)

// IsFranchise reports whether the IP carries an existing franchise
// (sequel, spin-off or franchise-core), which earns a comparable-scoring bonus.
func (ip IPFamiliarity) IsFranchise() bool {
	return ip == IPSequel || ip == IPSpinOff || ip == IPFranchiseCore
}

// NewTitleConcept describes a proposed, not-yet-produced title for
// greenlight forecasting. Budget estimates are in millions of dollars.
type NewTitleConcept struct {
	ConceptName string      `json:"concept_name"`
	Brand       string      `json:"brand"`
	Genre       string      `json:"genre"`
	ContentType ContentType `json:"content_type"`

	SeasonNumber *int `json:"season_number,omitempty"`
	EpisodeCount *int `json:"episode_count,omitempty"`

	ProductionBudgetEstimate float64 `json:"production_budget_estimate"`
	MarketingSpendEstimate   float64 `json:"marketing_spend_estimate"`

	IPFamiliarity  IPFamiliarity `json:"ip_familiarity"`
	StarPowerScore int           `json:"star_power_score"`     // 1-5
	BuzzPotential  float64       `json:"buzz_potential_score"` // 0-100
}

// BudgetTier derives the concept's tier from its production budget estimate,
// the same bucketing used for catalog titles.
func (c NewTitleConcept) BudgetTier() BudgetTier {
	return TierForBudget(c.ProductionBudgetEstimate)
}

// TotalCost is the concept's estimated all-in cost in dollars.
func (c NewTitleConcept) TotalCost() float64 {
	return (c.ProductionBudgetEstimate + c.MarketingSpendEstimate) * 1_000_000
}
