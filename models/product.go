package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCategory is assigned when a product is created without a category
const DefaultCategory = "General"

// Product represents an item in the catalog
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	WarrantyMonths int             `json:"warrantyMonths"` // 0 means no warranty
	Category       string          `json:"category"`
	Stock          int             `json:"stock"`
	Image          string          `json:"image,omitempty"` // public path of the uploaded image
	CreatedAt      time.Time       `json:"createdAt"`
}

// Matches reports whether the product matches a case-insensitive substring
// query against its name or category. An empty query matches everything.
func (p *Product) Matches(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// InCategory reports whether the product belongs to the given category
// (exact match, case-insensitive). An empty category matches everything.
func (p *Product) InCategory(category string) bool {
	if category == "" {
		return true
	}
	return strings.EqualFold(p.Category, category)
}
