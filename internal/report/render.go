package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/breachwatch/breachwatch/internal/types"
)

// PrintOptions controls terminal rendering.
type PrintOptions struct {
	NoColor bool
}

var (
	highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	medStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// PrintSummary renders the run summary and per-breach table for terminals.
func PrintSummary(w io.Writer, s types.Summary, opts PrintOptions) {
	fmt.Fprintf(w, "Exposed accounts: %d (unique emails: %d, breaches: %d)\n",
		s.TotalExposedAccounts, s.UniqueEmails, s.DistinctBreaches)
	fmt.Fprintf(w, "Overall risk: %.2f (%s)\n", s.RiskScore, band(s.RiskBand, opts.NoColor))
	if len(s.Breaches) == 0 {
		fmt.Fprintln(w, "No matches found in dataset.")
		return
	}
	fmt.Fprintln(w)
	table := tablewriter.NewTable(w)
	table.Header("SOURCE", "RECORDS", "EMAILS", "LATEST", "AVG SEVERITY", "BAND")
	for _, b := range s.Breaches {
		latest := "unknown"
		if b.LatestBreachDate != nil {
			latest = *b.LatestBreachDate
		}
		_ = table.Append([]string{
			b.Source,
			strconv.Itoa(b.Records),
			strconv.Itoa(b.UniqueEmails),
			latest,
			fmt.Sprintf("%.2f", b.AvgSeverity),
			band(b.RiskBand, opts.NoColor),
		})
	}
	_ = table.Render()
}

func band(b types.RiskBand, noColor bool) string {
	if noColor {
		return string(b)
	}
	switch b {
	case types.BandHigh:
		return highStyle.Render(string(b))
	case types.BandMed:
		return medStyle.Render(string(b))
	default:
		return lowStyle.Render(string(b))
	}
}
