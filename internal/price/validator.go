// Package price classifies the deviation between invoice rates and
// reference prices into a fixed severity ladder.
package price

import (
	"math"

	"github.com/joseph-ayodele/invoice-reconciler/constants"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// Bands holds the upper boundary (inclusive, in percent) of each severity
// band below MAJOR. Zero values fall back to the defaults 2/5/10/25.
type Bands struct {
	Minor       float64
	Small       float64
	Moderate    float64
	Significant float64
}

func DefaultBands() Bands {
	return Bands{Minor: 2, Small: 5, Moderate: 10, Significant: 25}
}

type Validator struct {
	bands Bands
}

func NewValidator(b Bands) *Validator {
	def := DefaultBands()
	if b.Minor <= 0 {
		b.Minor = def.Minor
	}
	if b.Small <= b.Minor {
		b.Small = def.Small
	}
	if b.Moderate <= b.Small {
		b.Moderate = def.Moderate
	}
	if b.Significant <= b.Moderate {
		b.Significant = def.Significant
	}
	return &Validator{bands: b}
}

// Assess compares an invoice rate against the reference price. A nil return
// means "not applicable" (missing rate, non-positive or non-finite values),
// which is a defined outcome rather than an error. Pure function.
func (v *Validator) Assess(invoiceRate *float64, databasePrice float64) *entity.PriceAssessment {
	if invoiceRate == nil {
		return nil
	}
	rate := *invoiceRate
	if !isUsable(rate) || !isUsable(databasePrice) {
		return nil
	}
	diff := rate - databasePrice
	pct := 100 * math.Abs(diff) / databasePrice
	return &entity.PriceAssessment{
		InvoiceRate:   rate,
		DatabasePrice: databasePrice,
		Difference:    diff,
		DifferencePct: pct,
		Severity:      v.severity(pct),
	}
}

func isUsable(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (v *Validator) severity(pct float64) constants.PriceSeverity {
	switch {
	case pct == 0:
		return constants.PriceExact
	case pct <= v.bands.Minor:
		return constants.PriceMinor
	case pct <= v.bands.Small:
		return constants.PriceSmall
	case pct <= v.bands.Moderate:
		return constants.PriceModerate
	case pct <= v.bands.Significant:
		return constants.PriceSignificant
	default:
		return constants.PriceMajor
	}
}
