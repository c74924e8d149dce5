package model

// QuoteRequest is the input for a full scoring and pricing pass.
type QuoteRequest struct {
	TenantID string `json:"tenant_id"`

	// Applicant carries the unscored section-A identification fields.
	Applicant Applicant `json:"applicant"`

	Answers AnswerMap `json:"answers"`

	// CoverageAmount is the desired insured amount. When zero, no premium
	// is quoted and only scoring is performed.
	CoverageAmount float64 `json:"coverage_amount,omitempty" validate:"gte=0"`

	// FillDefaults merges the questionnaire defaults ("No" / nothing
	// selected) for any absent scored question before validation.
	FillDefaults bool `json:"fill_defaults,omitempty"`
}

// Applicant holds the general-information answers. None of these fields
// participate in scoring.
type Applicant struct {
	CompanyName      string `json:"company_name,omitempty"`
	Address          string `json:"address,omitempty"`
	Websites         string `json:"websites,omitempty"`
	Activity         string `json:"activity,omitempty"`
	Employees        string `json:"employees,omitempty"`
	Revenue          string `json:"revenue,omitempty"`
	YearsInOperation string `json:"years_in_operation,omitempty"`
	PrimaryContact   string `json:"primary_contact,omitempty"`
}

// PremiumRequest is the input for the standalone pricing endpoint.
type PremiumRequest struct {
	Score          float64 `json:"score"`
	CoverageAmount float64 `json:"coverage_amount" validate:"gte=0"`
}
