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
	"github.com/nvasilev/storefront/internal/wishlist/domain"
	"github.com/nvasilev/storefront/internal/wishlist/usecase/command"
	"github.com/nvasilev/storefront/internal/wishlist/usecase/query"
)

// WishListHandler handles HTTP requests for the authenticated user's wish
// list.
type WishListHandler struct {
	addHandler    *command.AddWishListItemHandler
	removeHandler *command.RemoveWishListItemHandler
	clearHandler  *command.ClearWishListHandler
	getHandler    *query.GetWishListHandler

	authmw *middleware.Auth

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWishListHandler creates a new wish list handler.
func NewWishListHandler(
	lists domain.WishListRepository,
	items domain.WishListItemRepository,
	runner integrity.Runner,
	cascader *integrity.Cascader,
	authmw *middleware.Auth,
) *WishListHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_wishlist_requests_total",
			Help: "Total number of requests to wish list endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_wishlist_request_duration_seconds",
			Help:    "Duration of wish list endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WishListHandler{
		addHandler:     command.NewAddWishListItemHandler(runner),
		removeHandler:  command.NewRemoveWishListItemHandler(items),
		clearHandler:   command.NewClearWishListHandler(lists, cascader),
		getHandler:     query.NewGetWishListHandler(lists, items),
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
func (h *WishListHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetWishList handles GET /wishlist
func (h *WishListHandler) GetWishList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	view, err := h.getHandler.Handle(query.GetWishListQuery{UserID: userID})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			h.respondJSON(w, http.StatusOK, query.WishListView{Items: []domain.WishListItem{}})
			return
		}
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// AddItem handles POST /wishlist/items
func (h *WishListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.addHandler.Handle(r.Context(), command.AddWishListItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, item)
}

// RemoveItem handles DELETE /wishlist/items/{id}
func (h *WishListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.removeHandler.Handle(command.RemoveWishListItemCommand{ItemID: uint(itemID)}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Item removed"})
}

// ClearWishList handles DELETE /wishlist
func (h *WishListHandler) ClearWishList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := h.clearHandler.Handle(r.Context(), command.ClearWishListCommand{UserID: userID}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Wish list cleared"})
}

// respondJSON sends a JSON response
func (h *WishListHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *WishListHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps domain errors onto HTTP statuses
func (h *WishListHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// RegisterRoutes registers all wish list routes
func (h *WishListHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/wishlist", h.metricsMiddleware("/wishlist", h.authmw.Customer(h.GetWishList))).Methods("GET")
	router.HandleFunc("/wishlist", h.metricsMiddleware("/wishlist", h.authmw.Customer(h.ClearWishList))).Methods("DELETE")
	router.HandleFunc("/wishlist/items", h.metricsMiddleware("/wishlist/items", h.authmw.Customer(h.AddItem))).Methods("POST")
	router.HandleFunc("/wishlist/items/{id}", h.metricsMiddleware("/wishlist/items/{id}", h.authmw.Customer(h.RemoveItem))).Methods("DELETE")
}
