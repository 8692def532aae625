package models

// Classification labels a title's financial performance profile.
type Classification string

const (
	ClassTentpole       Classification = "Tentpole"
	ClassWorkhorse      Classification = "Workhorse"
	ClassNicheGem       Classification = "Niche Gem"
	ClassUnderperformer Classification = "Underperformer"
	ClassAcceptable     Classification = "Acceptable"
	ClassMarginal       Classification = "Marginal"
)

// TitleScorecard is the complete derived record for one title: engagement
// statistics, quality scores, cost and value components, efficiency ratios
// and the performance classification. Scorecards are always recomputed in
// full from the three input records, never partially updated.
//
// All money figures are in dollars. CostPerHour is +Inf for a title with
// zero hours viewed; ROI is defined as 0 for a zero-cost title.
type TitleScorecard struct {
	TitleID     string      `json:"title_id"`
	TitleName   string      `json:"title_name"`
	Brand       string      `json:"brand"`
	Genre       string      `json:"genre"`
	Platform    Platform    `json:"platform_primary"`
	ContentType ContentType `json:"content_type"`
	BudgetTier  BudgetTier  `json:"production_budget_tier"`

	// Engagement
	TotalHoursViewed    float64 `json:"total_hours_viewed"`
	PeakHours           float64 `json:"peak_hours"`
	PeakWeek            int     `json:"peak_week"`
	DecayRate           float64 `json:"decay_rate"`
	LongTailShare       float64 `json:"long_tail_share"`
	WeeksAboveThreshold int     `json:"weeks_above_threshold"`

	// Quality
	CriticScore   float64 `json:"critic_score"`
	AudienceScore float64 `json:"audience_score"`
	IMDBRating    float64 `json:"imdb_rating"`
	BuzzScore     float64 `json:"buzz_score"`

	// Cost
	ProductionBudget float64 `json:"production_budget"`
	MarketingSpend   float64 `json:"marketing_spend"`
	TotalCost        float64 `json:"total_cost"`

	// Value components
	AcquisitionValue float64 `json:"acquisition_value"`
	RetentionValue   float64 `json:"retention_value"`
	AdValue          float64 `json:"ad_value"`
	TheatricalValue  float64 `json:"theatrical_value"`
	PVODValue        float64 `json:"pvod_value"`
	StreamingValue   float64 `json:"streaming_value"` // acquisition + retention + ad
	TotalValue       float64 `json:"total_value"`

	// Efficiency
	ROI         float64 `json:"roi"`
	CostPerHour float64 `json:"cost_per_hour_viewed"`

	Classification Classification `json:"classification"`
}
