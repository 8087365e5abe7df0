// Package enrich holds the optional Have I Been Pwned lookup layer.
//
// The current implementation is an offline stub: it honours the pacing
// and bounded-count contract and returns placeholder results without
// touching the network, keeping the tool key-optional and safe to run
// anywhere. A real backend replaces lookupOne only.
package enrich

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/breachwatch/breachwatch/internal/types"
)

// DefaultDelay paces lookups against the public HIBP rate limit.
const DefaultDelay = 500 * time.Millisecond

// Client performs strictly sequential, paced exposure lookups.
type Client struct {
	limiter *rate.Limiter
}

// NewClient returns a Client waiting at least delay between lookups.
// A non-positive delay falls back to DefaultDelay.
func NewClient(delay time.Duration) *Client {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Client{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// LookupMany looks up at most maxCount emails in the order given and maps
// each to its result. maxCount <= 0 disables enrichment and returns an
// empty map. Lookups never parallelize (the backend rate limit is global)
// and never fail the run: a cancelled context returns whatever completed.
func (c *Client) LookupMany(ctx context.Context, emails []string, maxCount int) map[string]types.EnrichmentResult {
	results := map[string]types.EnrichmentResult{}
	if maxCount <= 0 {
		return results
	}
	if len(emails) > maxCount {
		emails = emails[:maxCount]
	}
	for _, e := range emails {
		if err := c.limiter.Wait(ctx); err != nil {
			break
		}
		results[e] = c.lookupOne(e)
	}
	return results
}

// lookupOne is where a real HIBP API call would go. Failures there must
// map to a "not pwned" placeholder, never an error.
func (c *Client) lookupOne(string) types.EnrichmentResult {
	return types.EnrichmentResult{Pwned: false, Breaches: []string{}}
}
