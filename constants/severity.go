package constants

// PriceSeverity classifies the percentage deviation between an invoice rate
// and the reference price.
type PriceSeverity string

// Stable values. Bands are (0,2] / (2,5] / (5,10] / (10,25] / >25 percent by
// default; the boundaries are configurable, the labels are not.
const (
	PriceExact       PriceSeverity = "EXACT"
	PriceMinor       PriceSeverity = "MINOR"
	PriceSmall       PriceSeverity = "SMALL"
	PriceModerate    PriceSeverity = "MODERATE"
	PriceSignificant PriceSeverity = "SIGNIFICANT"
	PriceMajor       PriceSeverity = "MAJOR"
)
