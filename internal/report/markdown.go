package report

import (
	"fmt"
	"strings"

	"github.com/breachwatch/breachwatch/internal/types"
)

// Limits for the narrative report: ranked breaches shown and sample rows
// in the exposure table.
const (
	markdownTopBreaches = 10
	markdownSampleRows  = 15
)

// Markdown renders the human-readable findings report. Pure function of
// the summary and match set.
func Markdown(s types.Summary, matches []types.BreachRecord) string {
	var b strings.Builder
	b.WriteString("# Data Breach & Credential Exposure – Findings\n\n")
	fmt.Fprintf(&b, "Generated: `%s`\n\n", s.GeneratedAt)
	fmt.Fprintf(&b, "- **Total exposed accounts:** %d\n", s.TotalExposedAccounts)
	fmt.Fprintf(&b, "- **Unique emails:** %d\n", s.UniqueEmails)
	fmt.Fprintf(&b, "- **Distinct breaches:** %d\n", s.DistinctBreaches)
	fmt.Fprintf(&b, "- **Overall risk score:** %v (%s)\n\n", s.RiskScore, s.RiskBand)

	b.WriteString("## Top Breaches by Severity\n\n")
	if len(s.Breaches) == 0 {
		b.WriteString("_No matches found in dataset._\n")
	} else {
		top := s.Breaches
		if len(top) > markdownTopBreaches {
			top = top[:markdownTopBreaches]
		}
		for _, br := range top {
			latest := "unknown"
			if br.LatestBreachDate != nil {
				latest = *br.LatestBreachDate
			}
			fmt.Fprintf(&b, "- **%s** — %d records | %d emails | Avg severity: %v (%s) | Latest: %s\n",
				br.Source, br.Records, br.UniqueEmails, br.AvgSeverity, br.RiskBand, latest)
		}
	}

	b.WriteString("\n## Exposure Types (Examples)\n\n")
	if len(matches) == 0 {
		b.WriteString("_N/A_\n")
	} else {
		b.WriteString("| email | source | breach_date | compromised_data |\n")
		b.WriteString("|---|---|---|---|\n")
		sample := matches
		if len(sample) > markdownSampleRows {
			sample = sample[:markdownSampleRows]
		}
		for _, r := range sample {
			date := ""
			if r.DateKnown() {
				date = r.BreachDate.Format("2006-01-02")
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				mdEscape(r.Email), mdEscape(r.Source), date, mdEscape(r.CompromisedData))
		}
	}

	b.WriteString("\n---\n**Note:** This report uses an offline sample dataset for demonstration. Live enrichment via HIBP can be enabled with an API key.\n")
	return b.String()
}

func mdEscape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
