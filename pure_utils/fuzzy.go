package pure_utils

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const FuzzyMatchThreshold = 0.85

// ClosestMatch finds the candidate most similar to the input, case-insensitive.
// Returns the original-cased candidate, its similarity, and whether the score
// reaches FuzzyMatchThreshold. An exact case-insensitive match always wins.
func ClosestMatch(input string, candidates []string) (string, float64, bool) {
	lowerInput := strings.ToLower(strings.TrimSpace(input))
	if lowerInput == "" || len(candidates) == 0 {
		return "", 0, false
	}

	jw := metrics.NewJaroWinkler()
	bestScore := 0.0
	best := ""
	for _, candidate := range candidates {
		lowerCandidate := strings.ToLower(candidate)
		if lowerCandidate == lowerInput {
			return candidate, 1, true
		}
		score := strutil.Similarity(lowerInput, lowerCandidate, jw)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, bestScore, bestScore >= FuzzyMatchThreshold
}
