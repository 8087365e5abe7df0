// Package aggregate turns a match set into the per-source and overall
// summary of a run.
package aggregate

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/breachwatch/breachwatch/internal/severity"
	"github.com/breachwatch/breachwatch/internal/types"
)

// topTokens limits the compromised-data categories reported per source.
const topTokens = 5

// Summarize scores every matched record at the given instant, groups the
// matches by breach source, and builds the run summary. An empty match set
// is a valid outcome: counts are zero, the breach list is empty, and the
// band is the definitional floor "Low" rather than a computed value.
func Summarize(matches []types.BreachRecord, now time.Time) types.Summary {
	s := types.Summary{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		RiskBand:    types.BandLow,
		Breaches:    []types.BreachAggregate{},
	}
	if len(matches) == 0 {
		return s
	}

	sevs := make([]int, len(matches))
	total := 0
	for i, r := range matches {
		sevs[i] = severity.Score(r, now)
		total += sevs[i]
	}

	// Group by source, keeping first-seen source order so frequency ties
	// later stay stable.
	var order []string
	groups := map[string][]int{}
	for i, r := range matches {
		if _, ok := groups[r.Source]; !ok {
			order = append(order, r.Source)
		}
		groups[r.Source] = append(groups[r.Source], i)
	}

	for _, source := range order {
		idxs := groups[source]
		emails := map[string]bool{}
		counts := map[string]int{}
		tokens := []string{}
		var latest time.Time
		sum := 0
		for _, i := range idxs {
			r := matches[i]
			emails[strings.ToLower(r.Email)] = true
			if r.DateKnown() && r.BreachDate.After(latest) {
				latest = r.BreachDate
			}
			sum += sevs[i]
			for _, tok := range splitTokens(r.CompromisedData) {
				if counts[tok] == 0 {
					tokens = append(tokens, tok)
				}
				counts[tok]++
			}
		}
		avg := round2(float64(sum) / float64(len(idxs)))
		sort.SliceStable(tokens, func(a, b int) bool {
			return counts[tokens[a]] > counts[tokens[b]]
		})
		if len(tokens) > topTokens {
			tokens = tokens[:topTokens]
		}
		var latestStr *string
		if !latest.IsZero() {
			v := latest.Format("2006-01-02")
			latestStr = &v
		}
		s.Breaches = append(s.Breaches, types.BreachAggregate{
			Source:             source,
			Records:            len(idxs),
			UniqueEmails:       len(emails),
			LatestBreachDate:   latestStr,
			AvgSeverity:        avg,
			RiskBand:           severity.Band(avg),
			CompromisedDataTop: tokens,
		})
	}

	sort.SliceStable(s.Breaches, func(i, j int) bool {
		if s.Breaches[i].AvgSeverity != s.Breaches[j].AvgSeverity {
			return s.Breaches[i].AvgSeverity > s.Breaches[j].AvgSeverity
		}
		return s.Breaches[i].Records > s.Breaches[j].Records
	})

	allEmails := map[string]bool{}
	for _, r := range matches {
		allEmails[strings.ToLower(r.Email)] = true
	}

	// Overall score averages per-record severities, not group means, so
	// large groups are not underweighted.
	overall := round2(float64(total) / float64(len(matches)))
	s.TotalExposedAccounts = len(matches)
	s.UniqueEmails = len(allEmails)
	s.DistinctBreaches = len(order)
	s.RiskScore = overall
	s.RiskBand = severity.Band(overall)
	return s
}

// splitTokens breaks a compromised_data cell into trimmed category tokens.
// Cells in the wild delimit with "|" or ",".
func splitTokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	var out []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
