package port

import "github.com/rl1809/auto-restock/internal/core/domain"

// OrderPlacer creates a replenishment order for an item.
type OrderPlacer interface {
	// CreateOrder records an order for quantity units of the named item
	CreateOrder(itemName string, quantity int) (domain.PurchaseOrder, error)
}

// ItemDirectory is read-only lookup into the stock ledger.
type ItemDirectory interface {
	// Item returns a copy of the named record, or false if it is unknown
	Item(name string) (domain.Item, bool)
}
