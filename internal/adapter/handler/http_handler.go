package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/core/service"
	"github.com/rl1809/auto-restock/internal/port"
)

// HTTPHandler is the thin facade over the ledger and the order register.
// It validates input at the boundary (the core documents preconditions but
// does not defend them) and maps sentinel errors to status codes.
type HTTPHandler struct {
	ledger   *service.StockLedger
	register *service.OrderRegister
	notifier port.Notifier
}

func NewHTTPHandler(ledger *service.StockLedger, register *service.OrderRegister, notifier port.Notifier) *HTTPHandler {
	return &HTTPHandler{ledger: ledger, register: register, notifier: notifier}
}

type AddItemRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	ReorderThreshold int             `json:"reorder_threshold"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Supplier         string          `json:"supplier"`
}

type SetQuantityRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ItemResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Quantity         int    `json:"quantity"`
	ReorderThreshold int    `json:"reorder_threshold"`
	UnitPrice        string `json:"unit_price"`
	Supplier         string `json:"supplier"`
	PendingOrder     bool   `json:"pending_order"`
}

type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	ItemName  string           `json:"item_name"`
	Quantity  int              `json:"quantity"`
	Supplier  SupplierResponse `json:"supplier"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// Items serves POST (add or increment) and GET (list) on /api/items.
func (h *HTTPHandler) Items(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.addItem(w, r)
	case http.MethodGet:
		h.listItems(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *HTTPHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.Name == "" || req.Supplier == "" {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "missing required fields",
		})
		return
	}
	if req.Quantity < 0 || req.ReorderThreshold < 0 || req.UnitPrice.IsNegative() {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "quantity, threshold and price must be non-negative",
		})
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	_, known := h.ledger.Item(req.Name)
	h.ledger.AddOrIncrement(req.Name, category, req.Quantity, req.ReorderThreshold, req.UnitPrice, req.Supplier)

	message := "Item added: " + req.Name
	if known {
		message = "Stock updated for: " + req.Name
	}
	h.notifier.Broadcast(message)

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: message})
}

func (h *HTTPHandler) listItems(w http.ResponseWriter, _ *http.Request) {
	items := h.ledger.Items()
	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ItemResponse{
			ID:               item.ID,
			Name:             item.Name,
			Category:         string(item.Category),
			Quantity:         item.Quantity,
			ReorderThreshold: item.ReorderThreshold,
			UnitPrice:        item.UnitPrice.String(),
			Supplier:         item.Supplier,
			PendingOrder:     item.PendingOrder,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetQuantity serves POST /api/items/quantity. An unknown item is still a
// success: the ledger treats it as a silent no-op and the facade mirrors
// the core's semantics rather than inventing a not-found.
func (h *HTTPHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}
	if req.Name == "" || req.Quantity < 0 {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "name required and quantity must be non-negative",
		})
		return
	}

	h.ledger.SetQuantity(req.Name, req.Quantity)
	writeJSON(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("Item updated: %s Qty: %d", req.Name, req.Quantity),
	})
}

// Orders serves GET /api/orders and GET /api/orders?id=<id>.
func (h *HTTPHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if id := r.URL.Query().Get("id"); id != "" {
		order, err := h.register.GetOrder(id)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, service.ErrOrderNotFound) {
				status = http.StatusNotFound
			}
			writeJSON(w, status, StatusResponse{Success: false, Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, orderResponse(order))
		return
	}

	orders := h.register.Orders()
	resp := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, orderResponse(order))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func orderResponse(order domain.PurchaseOrder) OrderResponse {
	return OrderResponse{
		ID:       order.ID,
		ItemName: order.ItemName,
		Quantity: order.Quantity,
		Supplier: SupplierResponse{
			ID:      order.Supplier.ID,
			Name:    order.Supplier.Name,
			Contact: order.Supplier.Contact,
		},
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
