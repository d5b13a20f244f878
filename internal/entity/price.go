package entity

import (
	"github.com/joseph-ayodele/invoice-reconciler/constants"
)

// PriceAssessment quantifies the deviation between an invoice rate and the
// matched material's reference price. Difference is signed (invoice minus
// database); DifferencePct is the absolute deviation as a percentage of the
// database price.
type PriceAssessment struct {
	InvoiceRate   float64                 `json:"invoice_rate"`
	DatabasePrice float64                 `json:"database_price"`
	Difference    float64                 `json:"difference"`
	DifferencePct float64                 `json:"difference_pct"`
	Severity      constants.PriceSeverity `json:"severity"`
}
