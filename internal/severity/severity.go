// Package severity scores individual breach records and maps scores onto
// qualitative risk bands.
package severity

import (
	"strings"
	"time"

	"github.com/breachwatch/breachwatch/internal/types"
)

// MaxScore caps per-record severity.
const MaxScore = 5

const daysPerYear = 365.25

// Keyword groups matched as substrings of the lower-cased
// compromised_data text. Groups are additive; each group counts once no
// matter how many of its keywords appear.
var (
	credentialKeywords = []string{"password", "pwd", "hash"}
	identityKeywords   = []string{"email", "username"}
	personalKeywords   = []string{"phone", "address", "dob"}
)

// Score computes the [0,MaxScore] severity of one record at the given
// instant. Recent breaches weigh more (<1y +2, <3y +1); an unknown breach
// date contributes zero. The clock is an explicit parameter so scoring
// stays deterministic.
func Score(r types.BreachRecord, now time.Time) int {
	score := 0
	if r.DateKnown() {
		years := now.Sub(r.BreachDate).Hours() / 24 / daysPerYear
		switch {
		case years < 1:
			score += 2
		case years < 3:
			score += 1
		}
	}
	data := strings.ToLower(r.CompromisedData)
	if containsAny(data, credentialKeywords) {
		score += 3
	}
	if containsAny(data, identityKeywords) {
		score++
	}
	if containsAny(data, personalKeywords) {
		score++
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score
}

// Band maps a severity score onto a risk band. The bands partition the
// whole range: >=4 High, >=2.5 Medium, else Low.
func Band(score float64) types.RiskBand {
	switch {
	case score >= 4:
		return types.BandHigh
	case score >= 2.5:
		return types.BandMed
	default:
		return types.BandLow
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
