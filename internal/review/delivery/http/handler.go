package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/nvasilev/storefront/internal/catalog/domain"
	"github.com/nvasilev/storefront/internal/delivery/middleware"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/review/domain"
	"github.com/nvasilev/storefront/internal/review/usecase/command"
	"github.com/nvasilev/storefront/internal/review/usecase/query"
	userdomain "github.com/nvasilev/storefront/internal/user/domain"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	createHandler      *command.CreateReviewHandler
	updateHandler      *command.UpdateReviewHandler
	deleteHandler      *command.DeleteReviewHandler
	listProductHandler *query.ListProductReviewsHandler
	listUserHandler    *query.ListUserReviewsHandler

	reviews domain.ReviewRepository
	authmw  *middleware.Auth

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(
	reviews domain.ReviewRepository,
	users userdomain.UserRepository,
	products catalogdomain.ProductRepository,
	authmw *middleware.Auth,
) *ReviewHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_review_requests_total",
			Help: "Total number of requests to review endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_review_request_duration_seconds",
			Help:    "Duration of review endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ReviewHandler{
		createHandler:      command.NewCreateReviewHandler(reviews, users, products),
		updateHandler:      command.NewUpdateReviewHandler(reviews),
		deleteHandler:      command.NewDeleteReviewHandler(reviews),
		listProductHandler: query.NewListProductReviewsHandler(reviews),
		listUserHandler:    query.NewListUserReviewsHandler(reviews),
		reviews:            reviews,
		authmw:             authmw,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
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
func (h *ReviewHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListProductReviews handles GET /products/{id}/reviews
func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	reviews, err := h.listProductHandler.Handle(query.ListProductReviewsQuery{ProductID: uint(productID)})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, reviews)
}

// ListMyReviews handles GET /reviews
func (h *ReviewHandler) ListMyReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	reviews, err := h.listUserHandler.Handle(query.ListUserReviewsQuery{UserID: userID})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, reviews)
}

// CreateReview handles POST /products/{id}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.createHandler.Handle(command.CreateReviewCommand{
		UserID:    userID,
		ProductID: uint(productID),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, review)
}

// UpdateReview handles PUT /reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	reviewID, ok := h.ownedReviewID(w, r, userID)
	if !ok {
		return
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.updateHandler.Handle(command.UpdateReviewCommand{
		ID:      reviewID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	reviewID, ok := h.ownedReviewID(w, r, userID)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteReviewCommand{ID: reviewID}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}

// ownedReviewID parses the {id} path variable and verifies the review
// belongs to the authenticated user.
func (h *ReviewHandler) ownedReviewID(w http.ResponseWriter, r *http.Request, userID uint) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid review ID")
		return 0, false
	}

	review, err := h.reviews.FindByID(uint(id))
	if err != nil {
		h.respondDomainError(w, err)
		return 0, false
	}
	if review.UserID != userID {
		h.respondError(w, http.StatusNotFound, "Review not found")
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func (h *ReviewHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *ReviewHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps domain errors onto HTTP statuses
func (h *ReviewHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// RegisterRoutes registers all review routes
func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products/{id}/reviews", h.metricsMiddleware("/products/{id}/reviews", h.ListProductReviews)).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", h.metricsMiddleware("/products/{id}/reviews", h.authmw.Customer(h.CreateReview))).Methods("POST")
	router.HandleFunc("/reviews", h.metricsMiddleware("/reviews", h.authmw.Customer(h.ListMyReviews))).Methods("GET")
	router.HandleFunc("/reviews/{id}", h.metricsMiddleware("/reviews/{id}", h.authmw.Customer(h.UpdateReview))).Methods("PUT")
	router.HandleFunc("/reviews/{id}", h.metricsMiddleware("/reviews/{id}", h.authmw.Customer(h.DeleteReview))).Methods("DELETE")
}
