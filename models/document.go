package models

// Document is the root structure persisted to disk. It owns both
// collections in insertion order; lookups are linear scans by id.
type Document struct {
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
}

// NewDocument returns an empty document with initialized collections
func NewDocument() *Document {
	return &Document{
		Products: []Product{},
		Orders:   []Order{},
	}
}

// FindProduct returns a pointer into the Products slice for the given id,
// or nil if no product matches.
func (d *Document) FindProduct(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindOrder returns a pointer into the Orders slice for the given id,
// or nil if no order matches.
func (d *Document) FindOrder(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}
