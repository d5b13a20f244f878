package constants

// ConfidenceTier is the coarse bucket derived from a numeric match score.
type ConfidenceTier string

const (
	ConfidenceHigh    ConfidenceTier = "HIGH"     // score >= 85
	ConfidenceMedium  ConfidenceTier = "MEDIUM"   // 70 <= score < 85
	ConfidenceLow     ConfidenceTier = "LOW"      // 50 <= score < 70
	ConfidenceNoMatch ConfidenceTier = "NO_MATCH" // score < 50
)

// TierForScore maps a score in [0,100] onto the fixed tier bands.
func TierForScore(score float64) ConfidenceTier {
	switch {
	case score >= 85:
		return ConfidenceHigh
	case score >= 70:
		return ConfidenceMedium
	case score >= 50:
		return ConfidenceLow
	default:
		return ConfidenceNoMatch
	}
}
