package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nvasilev/storefront/internal/delivery/middleware"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/order/domain"
	"github.com/nvasilev/storefront/internal/order/usecase/command"
	"github.com/nvasilev/storefront/internal/order/usecase/query"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	createHandler     *command.CreateOrderHandler
	addItemHandler    *command.AddOrderItemHandler
	updateItemHandler *command.UpdateOrderItemHandler
	removeItemHandler *command.RemoveOrderItemHandler
	statusHandler     *command.UpdateOrderStatusHandler
	deleteHandler     *command.DeleteOrderHandler
	deleteAllHandler  *command.DeleteAllOrdersHandler
	getHandler        *query.GetOrderHandler
	listHandler       *query.ListOrdersHandler

	orders domain.OrderRepository
	authmw *middleware.Auth

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(
	orders domain.OrderRepository,
	items domain.OrderItemRepository,
	runner integrity.Runner,
	cascader *integrity.Cascader,
	publisher command.OrderEventPublisher,
	authmw *middleware.Auth,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_requests_total",
			Help: "Total number of requests to order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_order_request_duration_seconds",
			Help:    "Duration of order endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &OrderHandler{
		createHandler:     command.NewCreateOrderHandler(runner, publisher),
		addItemHandler:    command.NewAddOrderItemHandler(runner),
		updateItemHandler: command.NewUpdateOrderItemHandler(runner),
		removeItemHandler: command.NewRemoveOrderItemHandler(runner),
		statusHandler:     command.NewUpdateOrderStatusHandler(orders, publisher),
		deleteHandler:     command.NewDeleteOrderHandler(cascader),
		deleteAllHandler:  command.NewDeleteAllOrdersHandler(cascader),
		getHandler:        query.NewGetOrderHandler(orders, items),
		listHandler:       query.NewListOrdersHandler(orders),
		orders:            orders,
		authmw:            authmw,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		ordersPlaced:      ordersPlaced,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Lines []struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		} `json:"lines"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateOrderCommand{UserID: userID}
	for _, line := range req.Lines {
		cmd.Lines = append(cmd.Lines, command.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.ordersPlaced.Inc()
	h.respondJSON(w, http.StatusCreated, order)
}

// ListMyOrders handles GET /orders
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{UserID: userID})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	view, err := h.getHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	if view.Order.UserID != userID {
		h.respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// AddItem handles POST /orders/{id}/items
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.addItemHandler.Handle(r.Context(), command.AddOrderItemCommand{
		OrderID:   id,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// UpdateItem handles PUT /orders/items/{id}
func (h *OrderHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.updateItemHandler.Handle(r.Context(), command.UpdateOrderItemCommand{
		ItemID:   id,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// RemoveItem handles DELETE /orders/items/{id}
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.removeItemHandler.Handle(r.Context(), command.RemoveOrderItemCommand{ItemID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// --- ADMIN ENDPOINTS ---

// ListOrders handles GET /admin/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PUT /admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.statusHandler.Handle(r.Context(), command.UpdateOrderStatusCommand{
		OrderID: id,
		Status:  req.Status,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /admin/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{ID: id}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

// DeleteAllOrders handles DELETE /admin/orders
func (h *OrderHandler) DeleteAllOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteAllHandler.Handle(r.Context()); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "All orders deleted"})
}

// --- helpers ---

func (h *OrderHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func (h *OrderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *OrderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps domain errors onto HTTP statuses
func (h *OrderHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Customer routes
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", h.authmw.Customer(h.CreateOrder))).Methods("POST")
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", h.authmw.Customer(h.ListMyOrders))).Methods("GET")
	router.HandleFunc("/orders/{id}", h.metricsMiddleware("/orders/{id}", h.authmw.Customer(h.GetOrder))).Methods("GET")
	router.HandleFunc("/orders/{id}/items", h.metricsMiddleware("/orders/{id}/items", h.authmw.Customer(h.AddItem))).Methods("POST")
	router.HandleFunc("/orders/items/{id}", h.metricsMiddleware("/orders/items/{id}", h.authmw.Customer(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/orders/items/{id}", h.metricsMiddleware("/orders/items/{id}", h.authmw.Customer(h.RemoveItem))).Methods("DELETE")

	// Admin routes
	router.HandleFunc("/admin/orders", h.metricsMiddleware("/admin/orders", h.authmw.Admin(h.ListOrders))).Methods("GET")
	router.HandleFunc("/admin/orders", h.metricsMiddleware("/admin/orders", h.authmw.Admin(h.DeleteAllOrders))).Methods("DELETE")
	router.HandleFunc("/admin/orders/{id}/status", h.metricsMiddleware("/admin/orders/{id}/status", h.authmw.Admin(h.UpdateStatus))).Methods("PUT")
	router.HandleFunc("/admin/orders/{id}", h.metricsMiddleware("/admin/orders/{id}", h.authmw.Admin(h.DeleteOrder))).Methods("DELETE")
}
