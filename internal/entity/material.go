package entity

// Material is a reference database entry eligible to match an invoice line.
// Attributes carries extension columns (category, composition, ...) opaquely;
// the engine never interprets or drops them.
type Material struct {
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	Supplier   string            `json:"supplier,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
