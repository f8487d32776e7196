package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/auto-restock/internal/adapter/handler"
	"github.com/rl1809/auto-restock/internal/adapter/notify"
	"github.com/rl1809/auto-restock/internal/config"
	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/core/service"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One ledger, one register, one dispatcher per running system; the
	// components are constructed explicitly and bound here, never through
	// package-level singletons.
	dispatcher := service.NewDispatcher(logger)
	ledger := service.NewStockLedger(logger, dispatcher, cfg.ReorderFactor)
	register := service.NewOrderRegister(logger, ledger, dispatcher)
	ledger.SetOrderPlacer(register)

	// Subscriber roster is registered before any mutation traffic begins.
	for _, role := range cfg.SubscriberRoles() {
		dispatcher.Subscribe(notify.LogSubscriber(role, logger))
	}

	// Optional Redis alert relay. An unreachable Redis degrades to local
	// logging only; it never blocks startup.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, alert relay disabled", zap.Error(err))
			rdb.Close()
			rdb = nil
		} else {
			relay := notify.NewRedisRelay(rdb, cfg.AlertChannel, logger)
			dispatcher.Subscribe(relay.Subscriber(domain.RoleAdmin))
			logger.Info("alert relay connected", zap.String("channel", cfg.AlertChannel))
		}
	}

	// HTTP facade
	httpHandler := handler.NewHTTPHandler(ledger, register, dispatcher)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/items", httpHandler.Items)
	mux.HandleFunc("/api/items/quantity", httpHandler.SetQuantity)
	mux.HandleFunc("/api/orders", httpHandler.Orders)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.ListenAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	if rdb != nil {
		rdb.Close()
	}
	logger.Info("connections closed")
}
