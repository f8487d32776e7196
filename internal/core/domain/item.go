package domain

import "github.com/shopspring/decimal"

// Item is a tracked stock record. Name is the ledger key and must be unique;
// ID is assigned once at creation and never changes. PendingOrder is true
// only while a replenishment order issued for this item has not yet been
// cleared by stock rising strictly above the threshold.
type Item struct {
	ID               string
	Name             string
	Category         Category
	Quantity         int // non-negative
	ReorderThreshold int // non-negative, fixed at creation
	UnitPrice        decimal.Decimal
	Supplier         string
	PendingOrder     bool
}
