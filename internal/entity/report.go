package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-reconciler/constants"
)

// ReconciledItem pairs one invoice line with its match outcome and, when the
// line matched and carried a rate, the price assessment.
type ReconciledItem struct {
	Item  LineItem         `json:"item"`
	Match MatchResult      `json:"match"`
	Price *PriceAssessment `json:"price,omitempty"`
}

// Report is the result of reconciling a whole invoice against the reference
// set: every line's outcome plus roll-up figures for the reporting layer.
type Report struct {
	ID           uuid.UUID              `json:"id"`
	Items        []ReconciledItem       `json:"items"`
	MatchedCount int                    `json:"matched_count"`
	MatchPct     float64                `json:"match_pct"`
	Status       constants.ReportStatus `json:"status"`
	GeneratedAt  time.Time              `json:"generated_at"`
}
