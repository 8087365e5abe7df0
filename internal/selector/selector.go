// Package selector filters dataset rows down to the match set of a run.
package selector

import (
	"bufio"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/breachwatch/breachwatch/internal/types"
)

// ByDomain returns records whose email ends with "@"+domain,
// case-insensitive. Exact suffix match only; subdomains do not expand.
func ByDomain(records []types.BreachRecord, domain string) []types.BreachRecord {
	suffix := "@" + strings.ToLower(domain)
	var out []types.BreachRecord
	for _, r := range records {
		if strings.HasSuffix(strings.ToLower(r.Email), suffix) {
			out = append(out, r)
		}
	}
	return out
}

// ByEmails returns records whose email is in the given list,
// case-insensitive.
func ByEmails(records []types.BreachRecord, emails []string) []types.BreachRecord {
	want := make(map[string]bool, len(emails))
	for _, e := range emails {
		want[strings.ToLower(e)] = true
	}
	var out []types.BreachRecord
	for _, r := range records {
		if want[strings.ToLower(r.Email)] {
			out = append(out, r)
		}
	}
	return out
}

// ReadEmailList reads one candidate per line. A line counts only if it is
// non-empty and contains "@"; anything else is skipped silently. The
// result is deduplicated and sorted.
func ReadEmailList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := map[string]bool{}
	var emails []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		e := strings.TrimSpace(sc.Text())
		if e == "" || !strings.Contains(e, "@") {
			continue
		}
		if !seen[e] {
			seen[e] = true
			emails = append(emails, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	sort.Strings(emails)
	return emails, nil
}

// rowKey hashes the full record so Union can dedupe on row equality.
func rowKey(r types.BreachRecord) uint64 {
	var b strings.Builder
	b.WriteString(r.Email)
	b.WriteByte(0)
	b.WriteString(r.Source)
	b.WriteByte(0)
	if r.DateKnown() {
		b.WriteString(r.BreachDate.Format(time.RFC3339))
	}
	b.WriteByte(0)
	b.WriteString(r.CompromisedData)
	b.WriteByte(0)
	b.WriteString(r.PasswordHash)
	return xxhash.Sum64String(b.String())
}

// Union merges match sets with set semantics on full-row equality,
// keeping first-seen order.
func Union(sets ...[]types.BreachRecord) []types.BreachRecord {
	seen := map[uint64]bool{}
	var out []types.BreachRecord
	for _, set := range sets {
		for _, r := range set {
			k := rowKey(r)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, r)
		}
	}
	return out
}

// Emails returns the sorted set of distinct lower-cased emails in records.
func Emails(records []types.BreachRecord) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range records {
		e := strings.ToLower(r.Email)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
