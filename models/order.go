package models

import (
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending  OrderStatus = "PENDING"
	StatusApproved OrderStatus = "APPROVED"
	StatusRejected OrderStatus = "REJECTED"
)

// Terminal reports whether the status is a final state. Only PENDING
// orders may be approved.
func (s OrderStatus) Terminal() bool {
	return s != StatusPending
}

// Order represents a customer order for a single product
type Order struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`  // customer name
	Phone        string      `json:"phone"` // customer contact
	ProductID    string      `json:"productId"`
	Quantity     int         `json:"quantity"`
	SerialNumber string      `json:"serialNumber,omitempty"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	// Set when the order is approved
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`
	// Set when the order is rejected
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`
}

// Matches reports whether the order matches a case-insensitive substring
// query against the customer name or serial number.
func (o *Order) Matches(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(o.Name), q) ||
		strings.Contains(strings.ToLower(o.SerialNumber), q)
}

// WarrantyExpiry computes the warranty expiry date by advancing the
// approval time by the given number of calendar months. Month arithmetic
// follows time.AddDate rollover semantics: Jan 31 plus 3 months lands on
// May 1, not Apr 30. Returns nil when the product carries no warranty.
func WarrantyExpiry(approvedAt time.Time, warrantyMonths int) *time.Time {
	if warrantyMonths <= 0 {
		return nil
	}
	expiry := approvedAt.AddDate(0, warrantyMonths, 0)
	return &expiry
}
