package constants

// ReportStatus summarizes how well an invoice reconciled overall,
// based on the share of line items that found a database match.
type ReportStatus string

const (
	ReportExcellent ReportStatus = "EXCELLENT" // >= 90% items matched
	ReportGood      ReportStatus = "GOOD"      // 70-89% items matched
	ReportAttention ReportStatus = "ATTENTION" // 50-69% items matched
	ReportPoor      ReportStatus = "POOR"      // < 50% items matched
)

// StatusForMatchPct maps a matched-items percentage onto the report ladder.
func StatusForMatchPct(pct float64) ReportStatus {
	switch {
	case pct >= 90:
		return ReportExcellent
	case pct >= 70:
		return ReportGood
	case pct >= 50:
		return ReportAttention
	default:
		return ReportPoor
	}
}
