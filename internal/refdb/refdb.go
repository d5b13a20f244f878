// Package refdb supplies the reference material set the matching engine runs
// against. Loaders own schema normalization (column aliases, price parsing,
// row skipping); the engine only ever sees clean entity.Material values.
package refdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// Loader loads the candidate set for one reconciliation run. Implementations
// must return a consistent snapshot per call; the engine never mutates it.
type Loader interface {
	Load(ctx context.Context) ([]entity.Material, error)
}

// Column aliases accepted across CSV exports and database tables.
var (
	nameColumns     = []string{"material_name", "name", "fabric_name"}
	priceColumns    = []string{"default_purchase_price", "price", "unit_price"}
	supplierColumns = []string{"supplier", "supplier_name", "vendor"}
)

func isNameColumn(col string) bool     { return contains(nameColumns, col) }
func isPriceColumn(col string) bool    { return contains(priceColumns, col) }
func isSupplierColumn(col string) bool { return contains(supplierColumns, col) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// materialFromRow maps a generic column->value row onto a Material.
// Rows without a usable name or price are skipped (ok=false); every column
// beyond name/price/supplier is preserved verbatim in Attributes.
func materialFromRow(row map[string]any) (entity.Material, bool) {
	var m entity.Material
	for col, val := range row {
		if val == nil {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(col))
		switch {
		case isNameColumn(key):
			m.Name = strings.TrimSpace(fmt.Sprint(val))
		case isPriceColumn(key):
			if p, err := parsePrice(fmt.Sprint(val)); err == nil {
				m.Price = p
			}
		case isSupplierColumn(key):
			m.Supplier = strings.TrimSpace(fmt.Sprint(val))
		default:
			if m.Attributes == nil {
				m.Attributes = make(map[string]string)
			}
			m.Attributes[key] = fmt.Sprint(val)
		}
	}
	if m.Name == "" || m.Price <= 0 {
		return entity.Material{}, false
	}
	return m, true
}

// parsePrice reads a price cell, tolerating thousands separators and
// currency markers that survive spreadsheet exports.
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimLeft(s, "₹$€£ ")
	return strconv.ParseFloat(s, 64)
}
