package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Supplier is a point-in-time snapshot captured when an order is created.
// It is not live-linked to the item that produced it.
type Supplier struct {
	ID      string
	Name    string
	Contact string
}

// PurchaseOrder is a replenishment order record. Orders are created exactly
// once with status pending; later status transitions are driven by external
// collaborators, never by reorder evaluation.
type PurchaseOrder struct {
	ID        string
	ItemName  string
	Quantity  int // positive
	Supplier  Supplier
	Status    OrderStatus
	CreatedAt time.Time
}
