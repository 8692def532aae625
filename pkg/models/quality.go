package models

// QualityProfile holds the per-title reception scores.
// Critic, audience and buzz are on a 0-100 scale; IMDB is 0-10.
type QualityProfile struct {
	TitleID       string  `json:"title_id"`
	CriticScore   float64 `json:"critic_score"`
	AudienceScore float64 `json:"audience_score"`
	IMDBRating    float64 `json:"imdb_rating"`
	BuzzScore     float64 `json:"buzz_score"`
}

// AvgCriticAudience is the midpoint of critic and audience scores,
// the quality signal used by the retention, theatrical and PVOD models.
func (q QualityProfile) AvgCriticAudience() float64 {
	return (q.CriticScore + q.AudienceScore) / 2
}
