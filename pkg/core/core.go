package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/breachwatch/breachwatch/internal/aggregate"
	"github.com/breachwatch/breachwatch/internal/dataset"
	"github.com/breachwatch/breachwatch/internal/enrich"
	"github.com/breachwatch/breachwatch/internal/selector"
	"github.com/breachwatch/breachwatch/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable
// path; they can become decoupled structs later without breaking callers.
type (
	Record           = types.BreachRecord
	Aggregate        = types.BreachAggregate
	Summary          = types.Summary
	EnrichmentResult = types.EnrichmentResult
	RiskBand         = types.RiskBand
)

// Config drives one scan run.
type Config struct {
	DatasetPath string   // offline CSV path, may be a glob
	Domain      string   // optional domain filter
	EmailsPath  string   // optional email-list file
	Emails      []string // explicit targets; takes precedence over EmailsPath
	MaxHIBP     int      // enrichment lookup cap, 0 disables
	HIBPDelay   time.Duration
	Now         time.Time // zero means time.Now
}

// Run is the stable entrypoint for other programs: load the dataset,
// select matches by domain and/or email list, summarize, and apply the
// optional enrichment pass. Domain and email selections union without
// duplicate rows.
func Run(ctx context.Context, cfg Config) (Summary, []Record, error) {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	records, err := dataset.LoadGlob(cfg.DatasetPath)
	if err != nil {
		return Summary{}, nil, err
	}

	var sets [][]Record
	targets := map[string]bool{}
	if cfg.Domain != "" {
		matched := selector.ByDomain(records, cfg.Domain)
		sets = append(sets, matched)
		for _, e := range selector.Emails(matched) {
			targets[e] = true
		}
	}
	emails := cfg.Emails
	if len(emails) == 0 && cfg.EmailsPath != "" {
		emails, err = selector.ReadEmailList(cfg.EmailsPath)
		if err != nil {
			return Summary{}, nil, fmt.Errorf("read email list: %w", err)
		}
	}
	if len(emails) > 0 {
		sets = append(sets, selector.ByEmails(records, emails))
		// Listed candidates count as lookup targets even without a match.
		for _, e := range emails {
			targets[strings.ToLower(e)] = true
		}
	}
	matches := selector.Union(sets...)

	summary := aggregate.Summarize(matches, now)
	if cfg.MaxHIBP > 0 && len(targets) > 0 {
		candidates := make([]string, 0, len(targets))
		for e := range targets {
			candidates = append(candidates, e)
		}
		sort.Strings(candidates)
		client := enrich.NewClient(cfg.HIBPDelay)
		if res := client.LookupMany(ctx, candidates, cfg.MaxHIBP); len(res) > 0 {
			summary.HIBPEnrichment = res
		}
	}
	return summary, matches, nil
}
