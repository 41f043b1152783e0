package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nvasilev/storefront/internal/cart/domain"
	"github.com/nvasilev/storefront/internal/cart/usecase/command"
	"github.com/nvasilev/storefront/internal/cart/usecase/query"
	"github.com/nvasilev/storefront/internal/delivery/middleware"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	addHandler    *command.AddCartItemHandler
	updateHandler *command.UpdateCartItemHandler
	removeHandler *command.RemoveCartItemHandler
	clearHandler  *command.ClearCartHandler
	getHandler    *query.GetCartHandler

	authmw *middleware.Auth

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(
	carts domain.CartRepository,
	items domain.CartItemRepository,
	runner integrity.Runner,
	cascader *integrity.Cascader,
	authmw *middleware.Auth,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		addHandler:     command.NewAddCartItemHandler(runner),
		updateHandler:  command.NewUpdateCartItemHandler(runner),
		removeHandler:  command.NewRemoveCartItemHandler(runner),
		clearHandler:   command.NewClearCartHandler(carts, cascader),
		getHandler:     query.NewGetCartHandler(carts, items),
		authmw:         authmw,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	view, err := h.getHandler.Handle(query.GetCartQuery{UserID: userID})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// No cart yet reads as an empty one.
			h.respondJSON(w, http.StatusOK, query.CartView{Items: []domain.CartItem{}})
			return
		}
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
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

	cart, err := h.addHandler.Handle(r.Context(), command.AddCartItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, cart)
}

// UpdateItem handles PUT /cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.updateHandler.Handle(r.Context(), command.UpdateCartItemCommand{
		ItemID:   uint(itemID),
		Quantity: req.Quantity,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	cart, err := h.removeHandler.Handle(r.Context(), command.RemoveCartItemCommand{ItemID: uint(itemID)})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, cart)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{UserID: userID}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// respondJSON sends a JSON response
func (h *CartHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CartHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps domain errors onto HTTP statuses
func (h *CartHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", h.authmw.Customer(h.GetCart))).Methods("GET")
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", h.authmw.Customer(h.ClearCart))).Methods("DELETE")
	router.HandleFunc("/cart/items", h.metricsMiddleware("/cart/items", h.authmw.Customer(h.AddItem))).Methods("POST")
	router.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/cart/items/{id}", h.authmw.Customer(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/cart/items/{id}", h.authmw.Customer(h.RemoveItem))).Methods("DELETE")
}
