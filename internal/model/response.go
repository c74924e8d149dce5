package model

type QuoteResponse struct {
	QuoteMetadata QuoteMetadata `json:"quote_metadata"`
	QuoteResult   QuoteResult   `json:"quote_result"`
}

type QuoteMetadata struct {
	QuoteID          string `json:"quote_id"`
	TenantID         string `json:"tenant_id"`
	QuoteStartedAt   string `json:"quote_started_at"`
	QuoteCompletedAt string `json:"quote_completed_at"`
	QuoteDurationMs  int64  `json:"quote_duration_ms"`
	QuoteOutcome     string `json:"quote_outcome"`
}

type QuoteResult struct {
	Messages      []QuoteMessage     `json:"messages"`
	SectionScores map[string]float64 `json:"section_scores,omitempty"`
	OverallScore  *float64           `json:"overall_score,omitempty"`
	RiskLabel     string             `json:"risk_label,omitempty"`
	Premium       *Premium           `json:"premium,omitempty"`
}

// Premium is the priced outcome: rate from the sigmoid curve applied to the
// requested coverage amount.
type Premium struct {
	Rate           float64 `json:"rate"`
	CoverageAmount float64 `json:"coverage_amount"`
	Amount         float64 `json:"amount"`
}

type PremiumResponse struct {
	Score          float64 `json:"score"`
	Rate           float64 `json:"rate"`
	CoverageAmount float64 `json:"coverage_amount"`
	Amount         float64 `json:"amount"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
