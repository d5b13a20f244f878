package entity

import (
	"github.com/joseph-ayodele/invoice-reconciler/constants"
)

// MatchResult is the outcome of running one query name through the matching
// cascade. It is constructed once per call and never mutated.
//
// Exactly two shapes exist: a match (Matched=true, Candidate set, score >= the
// confidence floor) and no match (Matched=false, Candidate nil, AlgorithmNone,
// score 0). "No match" is a normal outcome, not an error.
type MatchResult struct {
	Matched   bool                     `json:"matched"`
	Candidate *Material                `json:"candidate,omitempty"`
	Algorithm constants.MatchAlgorithm `json:"algorithm"`
	Score     float64                  `json:"score"`
	Tier      constants.ConfidenceTier `json:"confidence_tier"`
}

// NoMatch returns the canonical unmatched result.
func NoMatch() MatchResult {
	return MatchResult{
		Matched:   false,
		Algorithm: constants.AlgorithmNone,
		Score:     0,
		Tier:      constants.ConfidenceNoMatch,
	}
}
