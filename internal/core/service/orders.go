package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/port"
)

var (
	ErrUnknownItem   = errors.New("unknown item")
	ErrOrderNotFound = errors.New("order not found")
)

// supplierIDSeed is the fixed identifier stamped onto every supplier
// snapshot; real supplier records are out of scope.
const supplierIDSeed = "S001"

// OrderRegister creates and stores replenishment order records, keyed by
// generated identifier. It owns the order map exclusively; items are read
// through the ItemDirectory port.
type OrderRegister struct {
	logger   *zap.Logger
	items    port.ItemDirectory
	notifier port.Notifier

	mu     sync.Mutex
	orders map[string]domain.PurchaseOrder
}

func NewOrderRegister(logger *zap.Logger, items port.ItemDirectory, notifier port.Notifier) *OrderRegister {
	return &OrderRegister{
		logger:   logger,
		items:    items,
		notifier: notifier,
		orders:   make(map[string]domain.PurchaseOrder),
	}
}

// CreateOrder records a pending order for quantity units of the named item
// and notifies the supplier and manager roles. An unknown item creates no
// record and returns ErrUnknownItem.
func (r *OrderRegister) CreateOrder(itemName string, quantity int) (domain.PurchaseOrder, error) {
	item, ok := r.items.Item(itemName)
	if !ok {
		r.logger.Warn("order skipped, item not in ledger", zap.String("item", itemName))
		return domain.PurchaseOrder{}, ErrUnknownItem
	}

	order := domain.PurchaseOrder{
		ID:        domain.NewID(),
		ItemName:  itemName,
		Quantity:  quantity,
		Supplier:  supplierSnapshot(item.Supplier),
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.orders[order.ID] = order
	r.mu.Unlock()

	msg := fmt.Sprintf("Order created for: %s Quantity: %d", itemName, quantity)
	r.notifier.NotifyRole(msg, domain.RoleSupplier)
	r.notifier.NotifyRole(msg, domain.RoleManager)

	r.logger.Info("purchase order created",
		zap.String("order_id", order.ID),
		zap.String("item", itemName),
		zap.Int("quantity", quantity),
	)
	return order, nil
}

// GetOrder returns the order stored under id, or ErrOrderNotFound.
func (r *OrderRegister) GetOrder(id string) (domain.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.PurchaseOrder{}, ErrOrderNotFound
	}
	return order, nil
}

// Orders returns every stored order. Enumeration order is unspecified.
func (r *OrderRegister) Orders() []domain.PurchaseOrder {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]domain.PurchaseOrder, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	return orders
}

// UpdateStatus records a lifecycle transition for an existing order. The
// register writes only the initial pending status itself; this entry point
// exists for external collaborators that complete or cancel orders.
func (r *OrderRegister) UpdateStatus(id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	r.orders[id] = order
	return nil
}

// supplierSnapshot derives a synthetic supplier contact from the supplier
// name carried on the item record.
func supplierSnapshot(name string) domain.Supplier {
	return domain.Supplier{
		ID:      supplierIDSeed,
		Name:    name,
		Contact: "contact@" + strings.ToLower(name) + ".com",
	}
}
