package main

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/auto-restock/internal/adapter/notify"
	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/core/service"
)

// demo drives the core in-process through the canonical low-stock
// scenario: an item created below threshold triggers a reorder, a
// replenishment clears it, and a later drop triggers a second one.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dispatcher := service.NewDispatcher(logger)
	ledger := service.NewStockLedger(logger, dispatcher, service.DefaultReorderFactor)
	register := service.NewOrderRegister(logger, ledger, dispatcher)
	ledger.SetOrderPlacer(register)

	dispatcher.Subscribe(notify.LogSubscriber(domain.RoleManager, logger))
	dispatcher.Subscribe(notify.LogSubscriber(domain.RoleSupplier, logger))

	price := decimal.NewFromFloat(999.99)

	// First add lands below the threshold and triggers an automatic order.
	ledger.AddOrIncrement("HP Laptop", domain.CategoryElectronics, 1, 5, price, "TechSupplier")
	ledger.AddOrIncrement("HP Laptop", domain.CategoryElectronics, 1, 5, price, "TechSupplier")
	ledger.AddOrIncrement("Dell Laptop", domain.CategoryElectronics, 10, 5, decimal.NewFromFloat(899.99), "TechSupplier")

	// Simulated delivery clears the pending order.
	ledger.SetQuantity("HP Laptop", 20)

	// Dropping below the threshold again triggers a second order.
	ledger.SetQuantity("HP Laptop", 4)

	for _, item := range ledger.Items() {
		logger.Info("item",
			zap.String("name", item.Name),
			zap.Int("quantity", item.Quantity),
			zap.String("category", item.Category.DisplayName()),
			zap.Bool("pending_order", item.PendingOrder),
		)
	}
	for _, order := range register.Orders() {
		logger.Info("order",
			zap.String("id", order.ID),
			zap.String("item", order.ItemName),
			zap.Int("quantity", order.Quantity),
			zap.String("status", string(order.Status)),
		)
	}

	dispatcher.NotifyRole("Restock completed for HP Laptop", domain.RoleManager)
	dispatcher.NotifyRole("New Purchase Order for HP Laptop", domain.RoleSupplier)
}
