package entity

// LineItem is a single invoice line as produced by an upstream layout
// parser. Quantity, Rate and Amount are nil when the parser could not
// read them from the document.
type LineItem struct {
	RawName  string   `json:"raw_name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
}
