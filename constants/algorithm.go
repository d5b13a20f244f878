package constants

// MatchAlgorithm identifies which cascade strategy produced a match.
type MatchAlgorithm string

// Stable values (serialized into reports, store these exact strings).
const (
	AlgorithmExact     MatchAlgorithm = "EXACT"     // normalized names are identical
	AlgorithmSubstring MatchAlgorithm = "SUBSTRING" // one normalized name contains the other
	AlgorithmFuzzy     MatchAlgorithm = "FUZZY"     // combined string-similarity measures
	AlgorithmSemantic  MatchAlgorithm = "SEMANTIC"  // shared domain keywords (type/color/pattern)
	AlgorithmNone      MatchAlgorithm = "NONE"      // no strategy cleared its threshold
)

// CascadeRank returns the position of an algorithm in the fixed cascade order.
// Lower rank wins when merging results across shards.
func CascadeRank(a MatchAlgorithm) int {
	switch a {
	case AlgorithmExact:
		return 0
	case AlgorithmSubstring:
		return 1
	case AlgorithmFuzzy:
		return 2
	case AlgorithmSemantic:
		return 3
	default:
		return 4
	}
}
