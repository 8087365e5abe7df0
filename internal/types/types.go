package types

import "time"

// RiskBand is a qualitative risk label derived from a severity score.
type RiskBand string

const (
	BandLow  RiskBand = "Low"
	BandMed  RiskBand = "Medium"
	BandHigh RiskBand = "High"
)

// BreachRecord is one exposure entry from the offline dataset. A zero
// BreachDate means the date is unknown; unknown dates contribute nothing
// to recency scoring and are never an error.
type BreachRecord struct {
	Email           string    `json:"email"`
	Source          string    `json:"source"`
	BreachDate      time.Time `json:"breach_date"`
	CompromisedData string    `json:"compromised_data"`
	PasswordHash    string    `json:"password_hash,omitempty"`
}

// DateKnown reports whether the record carries a usable breach date.
func (r BreachRecord) DateKnown() bool { return !r.BreachDate.IsZero() }

// BreachAggregate holds per-source statistics over the matched records.
// LatestBreachDate is nil when every record in the group has an unknown
// date.
type BreachAggregate struct {
	Source             string   `json:"source"`
	Records            int      `json:"records"`
	UniqueEmails       int      `json:"unique_emails"`
	LatestBreachDate   *string  `json:"latest_breach_date"`
	AvgSeverity        float64  `json:"avg_severity"`
	RiskBand           RiskBand `json:"risk_band"`
	CompromisedDataTop []string `json:"compromised_data_top"`
}

// EnrichmentResult is the per-email outcome of an external exposure lookup.
type EnrichmentResult struct {
	Pwned    bool     `json:"pwned"`
	Breaches []string `json:"breaches"`
}

// Summary is the final structured output of one scan run.
type Summary struct {
	GeneratedAt          string                      `json:"generated_at"`
	TotalExposedAccounts int                         `json:"total_exposed_accounts"`
	UniqueEmails         int                         `json:"unique_emails"`
	DistinctBreaches     int                         `json:"distinct_breaches"`
	RiskScore            float64                     `json:"risk_score"`
	RiskBand             RiskBand                    `json:"risk_band"`
	Breaches             []BreachAggregate           `json:"breaches"`
	HIBPEnrichment       map[string]EnrichmentResult `json:"hibp_enrichment,omitempty"`
}
