package http

import (
	"context"
	"database/sql"
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
	"github.com/nvasilev/storefront/internal/media"
	"github.com/nvasilev/storefront/internal/session"
	"github.com/nvasilev/storefront/internal/user/domain"
	"github.com/nvasilev/storefront/internal/user/usecase/command"
	"github.com/nvasilev/storefront/internal/user/usecase/query"
	"github.com/nvasilev/storefront/pkg/auth"
)

// maxAvatarSize bounds multipart avatar uploads.
const maxAvatarSize = 5 << 20

// UserHandler handles HTTP requests for users, admins and addresses.
type UserHandler struct {
	// Command handlers
	registerHandler      *command.RegisterUserHandler
	registerAdminHandler *command.RegisterAdminHandler
	loginHandler         *command.LoginUserHandler
	loginAdminHandler    *command.LoginAdminHandler
	updateHandler        *command.UpdateUserHandler
	deleteHandler        *command.DeleteUserHandler
	deleteAllHandler     *command.DeleteAllUsersHandler
	deleteAdminHandler   *command.DeleteAdminHandler
	createAddrHandler    *command.CreateAddressHandler
	updateAddrHandler    *command.UpdateAddressHandler
	deleteAddrHandler    *command.DeleteAddressHandler
	uploadAvatarHandler  *command.UploadAvatarHandler
	deleteAvatarHandler  *command.DeleteAvatarHandler

	// Query handlers
	getUserHandler  *query.GetUserHandler
	listHandler     *query.ListUsersHandler
	listAddrHandler *query.ListAddressesHandler

	repo     domain.UserRepository
	sessions *session.Manager
	authmw   *middleware.Auth

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	userCount      prometheus.Gauge
}

// NewUserHandler creates a new user handler.
func NewUserHandler(
	users domain.UserRepository,
	admins domain.AdminRepository,
	addresses domain.AddressRepository,
	runner integrity.Runner,
	cascader *integrity.Cascader,
	sessions *session.Manager,
	authmw *middleware.Auth,
	blobs media.BlobStore,
) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_user_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_user_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	userCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_users",
			Help: "Number of registered users",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(userCount)

	return &UserHandler{
		registerHandler:      command.NewRegisterUserHandler(users),
		registerAdminHandler: command.NewRegisterAdminHandler(admins),
		loginHandler:         command.NewLoginUserHandler(users),
		loginAdminHandler:    command.NewLoginAdminHandler(admins),
		updateHandler:        command.NewUpdateUserHandler(users),
		deleteHandler:        command.NewDeleteUserHandler(cascader),
		deleteAllHandler:     command.NewDeleteAllUsersHandler(cascader),
		deleteAdminHandler:   command.NewDeleteAdminHandler(admins),
		createAddrHandler:    command.NewCreateAddressHandler(runner),
		updateAddrHandler:    command.NewUpdateAddressHandler(runner),
		deleteAddrHandler:    command.NewDeleteAddressHandler(addresses),
		uploadAvatarHandler:  command.NewUploadAvatarHandler(users, blobs),
		deleteAvatarHandler:  command.NewDeleteAvatarHandler(users, blobs),
		getUserHandler:       query.NewGetUserHandler(users),
		listHandler:          query.NewListUsersHandler(users),
		listAddrHandler:      query.NewListAddressesHandler(addresses),
		repo:                 users,
		sessions:             sessions,
		authmw:               authmw,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		userCount:            userCount,
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
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	user, err := h.registerHandler.Handle(cmd)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updateUserCountMetric()
	h.respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.loginHandler.Handle(command.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	if err := h.sessions.Create(w, user.ID, auth.KindCustomer); err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(w, auth.KindCustomer)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// AdminLogin handles POST /admin/auth/login
func (h *UserHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.loginAdminHandler.Handle(command.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	if err := h.sessions.Create(w, admin.ID, auth.KindAdmin); err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.respondJSON(w, http.StatusOK, admin)
}

// AdminLogout handles POST /admin/auth/logout
func (h *UserHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(w, auth.KindAdmin)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: userID})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{
		ID:       userID,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// DeleteAccount handles DELETE /users/me. Everything the user owns goes
// with the account, then the session cookie is dropped.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if _, err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: userID}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.sessions.Delete(w, auth.KindCustomer)
	h.updateUserCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}

// UploadAvatar handles POST /users/me/avatar
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Image file required")
		return
	}
	defer file.Close()

	user, err := h.uploadAvatarHandler.Handle(command.UploadAvatarCommand{
		UserID:      userID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// DeleteAvatar handles DELETE /users/me/avatar
func (h *UserHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.deleteAvatarHandler.Handle(command.DeleteAvatarCommand{UserID: userID})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// ListAddresses handles GET /users/me/addresses
func (h *UserHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	addresses, err := h.listAddrHandler.Handle(query.ListAddressesQuery{UserID: userID})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, addresses)
}

// CreateAddress handles POST /users/me/addresses
func (h *UserHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		Country string `json:"country"`
		Zip     string `json:"zip"`
		Default bool   `json:"default"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	address, err := h.createAddrHandler.Handle(r.Context(), command.CreateAddressCommand{
		UserID:  userID,
		Street:  req.Street,
		City:    req.City,
		Country: req.Country,
		Zip:     req.Zip,
		Default: req.Default,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, address)
}

// UpdateAddress handles PUT /users/me/addresses/{id}
func (h *UserHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	addressID, ok := h.ownedAddressID(w, r, userID)
	if !ok {
		return
	}

	var req struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		Country string `json:"country"`
		Zip     string `json:"zip"`
		Default *bool  `json:"default"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	address, err := h.updateAddrHandler.Handle(r.Context(), command.UpdateAddressCommand{
		ID:      addressID,
		Street:  req.Street,
		City:    req.City,
		Country: req.Country,
		Zip:     req.Zip,
		Default: req.Default,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, address)
}

// DeleteAddress handles DELETE /users/me/addresses/{id}
func (h *UserHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PrincipalID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	addressID, ok := h.ownedAddressID(w, r, userID)
	if !ok {
		return
	}

	if err := h.deleteAddrHandler.Handle(command.DeleteAddressCommand{ID: addressID}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Address deleted"})
}

// ownedAddressID parses the {id} path variable and verifies the address
// belongs to the authenticated user.
func (h *UserHandler) ownedAddressID(w http.ResponseWriter, r *http.Request, userID uint) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid address ID")
		return 0, false
	}

	addresses, err := h.listAddrHandler.Handle(query.ListAddressesQuery{UserID: userID})
	if err != nil {
		h.respondDomainError(w, err)
		return 0, false
	}
	for _, address := range addresses {
		if address.ID == uint(id) {
			return uint(id), true
		}
	}

	h.respondError(w, http.StatusNotFound, "Address not found")
	return 0, false
}

// --- ADMIN ENDPOINTS ---

// CreateAdmin handles POST /admin/users
func (h *UserHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.registerAdminHandler.Handle(command.RegisterAdminCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, admin)
}

// GetUser handles GET /admin/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: uint(id)})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, err := h.listHandler.Handle(query.ListUsersQuery{Limit: limit, Offset: offset})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updateUserCountMetric()
	h.respondJSON(w, http.StatusOK, users)
}

// DeleteUser handles DELETE /admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if _, err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: uint(id)}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updateUserCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// DeleteAllUsers handles DELETE /admin/users
func (h *UserHandler) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteAllHandler.Handle(r.Context()); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updateUserCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "All users deleted"})
}

// DeleteAdmin handles DELETE /admin/admins/{id}
func (h *UserHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid admin ID")
		return
	}

	if err := h.deleteAdminHandler.Handle(command.DeleteAdminCommand{ID: uint(id)}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Admin deleted successfully"})
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// updateUserCountMetric updates the registered users gauge
func (h *UserHandler) updateUserCountMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.userCount.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps domain errors onto HTTP statuses
func (h *UserHandler) respondDomainError(w http.ResponseWriter, err error) {
	h.respondError(w, statusFromError(err), err.Error())
}

func statusFromError(err error) int {
	switch {
	case apperr.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConstraint):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrAuthFailed):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/logout", h.metricsMiddleware("/auth/logout", h.Logout)).Methods("POST")
	router.HandleFunc("/admin/auth/login", h.metricsMiddleware("/admin/auth/login", h.AdminLogin)).Methods("POST")
	router.HandleFunc("/admin/auth/logout", h.metricsMiddleware("/admin/auth/logout", h.AdminLogout)).Methods("POST")

	// Authenticated user routes
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", h.authmw.Customer(h.GetProfile))).Methods("GET")
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", h.authmw.Customer(h.UpdateProfile))).Methods("PUT")
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", h.authmw.Customer(h.DeleteAccount))).Methods("DELETE")
	router.HandleFunc("/users/me/avatar", h.metricsMiddleware("/users/me/avatar", h.authmw.Customer(h.UploadAvatar))).Methods("POST")
	router.HandleFunc("/users/me/avatar", h.metricsMiddleware("/users/me/avatar", h.authmw.Customer(h.DeleteAvatar))).Methods("DELETE")
	router.HandleFunc("/users/me/addresses", h.metricsMiddleware("/users/me/addresses", h.authmw.Customer(h.ListAddresses))).Methods("GET")
	router.HandleFunc("/users/me/addresses", h.metricsMiddleware("/users/me/addresses", h.authmw.Customer(h.CreateAddress))).Methods("POST")
	router.HandleFunc("/users/me/addresses/{id}", h.metricsMiddleware("/users/me/addresses/{id}", h.authmw.Customer(h.UpdateAddress))).Methods("PUT")
	router.HandleFunc("/users/me/addresses/{id}", h.metricsMiddleware("/users/me/addresses/{id}", h.authmw.Customer(h.DeleteAddress))).Methods("DELETE")

	// Admin routes
	router.HandleFunc("/admin/users", h.metricsMiddleware("/admin/users", h.authmw.Admin(h.CreateAdmin))).Methods("POST")
	router.HandleFunc("/admin/users", h.metricsMiddleware("/admin/users", h.authmw.Admin(h.ListUsers))).Methods("GET")
	router.HandleFunc("/admin/users", h.metricsMiddleware("/admin/users", h.authmw.Admin(h.DeleteAllUsers))).Methods("DELETE")
	router.HandleFunc("/admin/users/{id}", h.metricsMiddleware("/admin/users/{id}", h.authmw.Admin(h.GetUser))).Methods("GET")
	router.HandleFunc("/admin/users/{id}", h.metricsMiddleware("/admin/users/{id}", h.authmw.Admin(h.DeleteUser))).Methods("DELETE")
	router.HandleFunc("/admin/admins/{id}", h.metricsMiddleware("/admin/admins/{id}", h.authmw.Admin(h.DeleteAdmin))).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
