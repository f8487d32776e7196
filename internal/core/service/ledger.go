package service

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/port"
)

// DefaultReorderFactor is the replenishment policy inherited from the
// original system: order twice the threshold.
const DefaultReorderFactor = 2

// StockLedger holds the authoritative quantity and reorder state per item,
// keyed by unique name. Every mutation is followed by reorder evaluation:
// while an item is at or below its threshold and no order is outstanding,
// the ledger asks the bound OrderPlacer for reorderFactor x threshold units
// and flips the item's PendingOrder flag. Each item is a two-state machine,
// healthy or reorder-in-flight, and at most one order is ever outstanding
// per item.
//
// A single exclusive mutex guards the item map; the pending-order check and
// flip happen entirely inside the critical section.
type StockLedger struct {
	logger        *zap.Logger
	notifier      port.Notifier
	reorderFactor int

	mu     sync.Mutex
	items  map[string]*domain.Item
	placer port.OrderPlacer
}

func NewStockLedger(logger *zap.Logger, notifier port.Notifier, reorderFactor int) *StockLedger {
	if reorderFactor <= 0 {
		reorderFactor = DefaultReorderFactor
	}
	return &StockLedger{
		logger:        logger,
		notifier:      notifier,
		reorderFactor: reorderFactor,
		items:         make(map[string]*domain.Item),
	}
}

// SetOrderPlacer binds the register that receives reorder requests. The
// ledger and register reference each other, so binding happens after both
// are constructed. Must be called before any mutation traffic.
func (l *StockLedger) SetOrderPlacer(placer port.OrderPlacer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.placer = placer
}

// reorder is a decision computed inside the critical section and executed
// after it, because the order register reads back through Item().
type reorder struct {
	itemName string
	quantity int
	stock    int
}

// AddOrIncrement inserts a new item record or adds quantity to an existing
// one. For an existing name the stored category, threshold, price and
// supplier are retained, and the threshold passed in this call drives both
// the pending-order reset and the reorder evaluation. Preconditions the
// caller owns: quantity, reorderThreshold and unitPrice are non-negative
// and the increment does not overflow.
func (l *StockLedger) AddOrIncrement(name string, category domain.Category, quantity, reorderThreshold int, unitPrice decimal.Decimal, supplier string) {
	l.mu.Lock()

	var decision *reorder
	if item, ok := l.items[name]; ok {
		item.Quantity += quantity
		if item.Quantity > reorderThreshold {
			item.PendingOrder = false
		}
		decision = l.evaluateLocked(item, reorderThreshold)
		l.mu.Unlock()

		l.logger.Info("stock incremented",
			zap.String("item", name),
			zap.Int("added", quantity),
		)
		l.execute(decision)
		return
	}

	item := &domain.Item{
		ID:               domain.NewID(),
		Name:             name,
		Category:         category,
		Quantity:         quantity,
		ReorderThreshold: reorderThreshold,
		UnitPrice:        unitPrice,
		Supplier:         supplier,
	}
	l.items[name] = item
	decision = l.evaluateLocked(item, item.ReorderThreshold)
	l.mu.Unlock()

	l.logger.Info("item added",
		zap.String("item", name),
		zap.String("category", string(category)),
		zap.Int("quantity", quantity),
	)
	l.execute(decision)
}

// SetQuantity replaces the quantity of a known item; unknown names are a
// silent no-op. A quantity strictly above the threshold clears the
// pending-order flag unconditionally, even if no reorder was ever issued.
// newQuantity must be non-negative.
func (l *StockLedger) SetQuantity(name string, newQuantity int) {
	l.mu.Lock()
	item, ok := l.items[name]
	if !ok {
		l.mu.Unlock()
		l.logger.Debug("quantity update for unknown item", zap.String("item", name))
		return
	}

	item.Quantity = newQuantity
	if newQuantity > item.ReorderThreshold {
		item.PendingOrder = false
	}
	decision := l.evaluateLocked(item, item.ReorderThreshold)
	l.mu.Unlock()

	l.logger.Info("quantity updated",
		zap.String("item", name),
		zap.Int("quantity", newQuantity),
	)
	l.execute(decision)
}

// Item returns a copy of the named record, or false if it is unknown.
func (l *StockLedger) Item(name string) (domain.Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[name]
	if !ok {
		return domain.Item{}, false
	}
	return *item, true
}

// Category returns the category of a known item.
func (l *StockLedger) Category(name string) (domain.Category, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[name]
	if !ok {
		return "", false
	}
	return item.Category, true
}

// Items returns copies of every item record.
func (l *StockLedger) Items() []domain.Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]domain.Item, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, *item)
	}
	return items
}

// evaluateLocked runs the reorder condition against item while the ledger
// mutex is held. If a reorder is already outstanding it does nothing; that
// guard is what keeps reorders idempotent per low-stock event. Otherwise,
// at or below threshold, it flips PendingOrder and returns the order to
// place. The flag flips here, inside the critical section, so a concurrent
// mutation can never double-trigger; the fan-out itself runs after the
// caller releases the lock.
func (l *StockLedger) evaluateLocked(item *domain.Item, threshold int) *reorder {
	if item.PendingOrder {
		return nil
	}
	if item.Quantity > threshold {
		return nil
	}
	item.PendingOrder = true
	return &reorder{
		itemName: item.Name,
		quantity: l.reorderFactor * threshold,
		stock:    item.Quantity,
	}
}

// execute performs the notification and order placement for a reorder
// decision, outside the ledger mutex.
func (l *StockLedger) execute(decision *reorder) {
	if decision == nil {
		return
	}

	l.logger.Info("stock at or below threshold",
		zap.String("item", decision.itemName),
		zap.Int("quantity", decision.stock),
	)
	l.notifier.Broadcast(fmt.Sprintf("Low stock: %s (Qty: %d)", decision.itemName, decision.stock))

	if _, err := l.placer.CreateOrder(decision.itemName, decision.quantity); err != nil {
		l.logger.Warn("reorder failed", zap.String("item", decision.itemName), zap.Error(err))
	}
}
