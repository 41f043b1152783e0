package http

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nvasilev/storefront/internal/catalog/domain"
	"github.com/nvasilev/storefront/internal/catalog/usecase/command"
	"github.com/nvasilev/storefront/internal/catalog/usecase/query"
	"github.com/nvasilev/storefront/internal/delivery/middleware"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/media"
)

// maxImageSize bounds multipart image uploads.
const maxImageSize = 10 << 20

// CatalogHandler handles HTTP requests for products, brands and
// categories.
type CatalogHandler struct {
	// Command handlers
	createProductHandler  *command.CreateProductHandler
	updateProductHandler  *command.UpdateProductHandler
	deleteProductHandler  *command.DeleteProductHandler
	deleteProductsHandler *command.DeleteAllProductsHandler
	uploadImageHandler    *command.UploadProductImageHandler
	deleteImageHandler    *command.DeleteProductImageHandler
	createBrandHandler    *command.CreateBrandHandler
	updateBrandHandler    *command.UpdateBrandHandler
	deleteBrandHandler    *command.DeleteBrandHandler
	deleteBrandsHandler   *command.DeleteAllBrandsHandler
	brandImageHandler     *command.UploadBrandImageHandler
	createCategoryHandler *command.CreateCategoryHandler
	updateCategoryHandler *command.UpdateCategoryHandler
	deleteCategoryHandler *command.DeleteCategoryHandler
	deleteCatsHandler     *command.DeleteAllCategoriesHandler
	categoryImageHandler  *command.UploadCategoryImageHandler

	// Query handlers
	getProductHandler  *query.GetProductHandler
	listProductHandler *query.ListProductsHandler
	getBrandHandler    *query.GetBrandHandler
	listBrandHandler   *query.ListBrandsHandler
	getCategoryHandler *query.GetCategoryHandler
	listCatHandler     *query.ListCategoriesHandler

	products domain.ProductRepository
	authmw   *middleware.Auth
	cache    *middleware.Cache

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	productCount   prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(
	products domain.ProductRepository,
	brands domain.BrandRepository,
	categories domain.CategoryRepository,
	cascader *integrity.Cascader,
	authmw *middleware.Auth,
	cache *middleware.Cache,
	blobs media.BlobStore,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	productCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_products",
			Help: "Number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(productCount)

	return &CatalogHandler{
		createProductHandler:  command.NewCreateProductHandler(products, brands, categories),
		updateProductHandler:  command.NewUpdateProductHandler(products, brands, categories),
		deleteProductHandler:  command.NewDeleteProductHandler(cascader),
		deleteProductsHandler: command.NewDeleteAllProductsHandler(cascader),
		uploadImageHandler:    command.NewUploadProductImageHandler(products, blobs),
		deleteImageHandler:    command.NewDeleteProductImageHandler(products, blobs),
		createBrandHandler:    command.NewCreateBrandHandler(brands),
		updateBrandHandler:    command.NewUpdateBrandHandler(brands),
		deleteBrandHandler:    command.NewDeleteBrandHandler(cascader),
		deleteBrandsHandler:   command.NewDeleteAllBrandsHandler(cascader),
		brandImageHandler:     command.NewUploadBrandImageHandler(brands, blobs),
		createCategoryHandler: command.NewCreateCategoryHandler(categories),
		updateCategoryHandler: command.NewUpdateCategoryHandler(categories),
		deleteCategoryHandler: command.NewDeleteCategoryHandler(cascader),
		deleteCatsHandler:     command.NewDeleteAllCategoriesHandler(cascader),
		categoryImageHandler:  command.NewUploadCategoryImageHandler(categories, blobs),
		getProductHandler:     query.NewGetProductHandler(products),
		listProductHandler:    query.NewListProductsHandler(products),
		getBrandHandler:       query.NewGetBrandHandler(brands),
		listBrandHandler:      query.NewListBrandsHandler(brands),
		getCategoryHandler:    query.NewGetCategoryHandler(categories),
		listCatHandler:        query.NewListCategoriesHandler(categories),
		products:              products,
		authmw:                authmw,
		cache:                 cache,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		productCount:          productCount,
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// --- PRODUCTS ---

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	brandID, _ := strconv.ParseUint(r.URL.Query().Get("brand_id"), 10, 32)
	categoryID, _ := strconv.ParseUint(r.URL.Query().Get("category_id"), 10, 32)

	products, err := h.listProductHandler.Handle(query.ListProductsQuery{
		Limit:      limit,
		Offset:     offset,
		BrandID:    uint(brandID),
		CategoryID: uint(categoryID),
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /admin/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Stock       int     `json:"stock"`
		CategoryID  uint    `json:"category_id"`
		BrandID     uint    `json:"brand_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.createProductHandler.Handle(command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
		CategoryID  uint     `json:"category_id"`
		BrandID     uint     `json:"brand_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.updateProductHandler.Handle(command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	if err := h.deleteProductHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// DeleteAllProducts handles DELETE /admin/products
func (h *CatalogHandler) DeleteAllProducts(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteProductsHandler.Handle(r.Context()); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "All products deleted"})
}

// UploadProductImage handles POST /admin/products/{id}/image
func (h *CatalogHandler) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	file, header, ok := h.imageFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	product, err := h.uploadImageHandler.Handle(command.UploadProductImageCommand{
		ProductID:   id,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusOK, product)
}

// DeleteProductImage handles DELETE /admin/products/{id}/image
func (h *CatalogHandler) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	product, err := h.deleteImageHandler.Handle(command.DeleteProductImageCommand{ProductID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusOK, product)
}

// --- BRANDS ---

// ListBrands handles GET /brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.listBrandHandler.Handle()
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, brands)
}

// GetBrand handles GET /brands/{id}
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid brand ID")
	if !ok {
		return
	}

	brand, err := h.getBrandHandler.Handle(query.GetBrandQuery{ID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, brand)
}

// CreateBrand handles POST /admin/brands
func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	brand, err := h.createBrandHandler.Handle(command.CreateBrandCommand{Name: req.Name})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusCreated, brand)
}

// UpdateBrand handles PUT /admin/brands/{id}
func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid brand ID")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	brand, err := h.updateBrandHandler.Handle(command.UpdateBrandCommand{ID: id, Name: req.Name})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusOK, brand)
}

// DeleteBrand handles DELETE /admin/brands/{id}
func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid brand ID")
	if !ok {
		return
	}

	if err := h.deleteBrandHandler.Handle(r.Context(), command.DeleteBrandCommand{ID: id}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Brand deleted successfully"})
}

// DeleteAllBrands handles DELETE /admin/brands
func (h *CatalogHandler) DeleteAllBrands(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteBrandsHandler.Handle(r.Context()); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "All brands deleted"})
}

// UploadBrandImage handles POST /admin/brands/{id}/image
func (h *CatalogHandler) UploadBrandImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid brand ID")
	if !ok {
		return
	}

	file, header, ok := h.imageFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	brand, err := h.brandImageHandler.Handle(command.UploadGroupImageCommand{
		ID:          id,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusOK, brand)
}

// --- CATEGORIES ---

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCatHandler.Handle()
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid category ID")
	if !ok {
		return
	}

	category, err := h.getCategoryHandler.Handle(query.GetCategoryQuery{ID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

// CreateCategory handles POST /admin/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.createCategoryHandler.Handle(command.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /admin/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid category ID")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.updateCategoryHandler.Handle(command.UpdateCategoryCommand{ID: id, Name: req.Name})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /admin/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid category ID")
	if !ok {
		return
	}

	if err := h.deleteCategoryHandler.Handle(r.Context(), command.DeleteCategoryCommand{ID: id}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// DeleteAllCategories handles DELETE /admin/categories
func (h *CatalogHandler) DeleteAllCategories(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteCatsHandler.Handle(r.Context()); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "All categories deleted"})
}

// UploadCategoryImage handles POST /admin/categories/{id}/image
func (h *CatalogHandler) UploadCategoryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "Invalid category ID")
	if !ok {
		return
	}

	file, header, ok := h.imageFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	category, err := h.categoryImageHandler.Handle(command.UploadGroupImageCommand{
		ID:          id,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.cache.Invalidate(r)
	h.respondJSON(w, http.StatusOK, category)
}

// --- helpers ---

func (h *CatalogHandler) pathID(w http.ResponseWriter, r *http.Request, message string) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, message)
		return 0, false
	}
	return uint(id), true
}

func (h *CatalogHandler) imageFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, nil, false
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Image file required")
		return nil, nil, false
	}
	return file, header, true
}

// updateProductCountMetric updates the product count gauge
func (h *CatalogHandler) updateProductCountMetric() {
	count, err := h.products.Count()
	if err == nil {
		h.productCount.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps domain errors onto HTTP statuses
func (h *CatalogHandler) respondDomainError(w http.ResponseWriter, err error) {
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
	default:
		return http.StatusInternalServerError
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes, list responses served through the Redis cache
	router.HandleFunc("/products", h.metricsMiddleware("/products", h.cache.Wrap(h.ListProducts))).Methods("GET")
	router.HandleFunc("/products/{id}", h.metricsMiddleware("/products/{id}", h.cache.Wrap(h.GetProduct))).Methods("GET")
	router.HandleFunc("/brands", h.metricsMiddleware("/brands", h.cache.Wrap(h.ListBrands))).Methods("GET")
	router.HandleFunc("/brands/{id}", h.metricsMiddleware("/brands/{id}", h.cache.Wrap(h.GetBrand))).Methods("GET")
	router.HandleFunc("/categories", h.metricsMiddleware("/categories", h.cache.Wrap(h.ListCategories))).Methods("GET")
	router.HandleFunc("/categories/{id}", h.metricsMiddleware("/categories/{id}", h.cache.Wrap(h.GetCategory))).Methods("GET")

	// Admin routes
	router.HandleFunc("/admin/products", h.metricsMiddleware("/admin/products", h.authmw.Admin(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/admin/products", h.metricsMiddleware("/admin/products", h.authmw.Admin(h.DeleteAllProducts))).Methods("DELETE")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", h.authmw.Admin(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", h.authmw.Admin(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/admin/products/{id}/image", h.metricsMiddleware("/admin/products/{id}/image", h.authmw.Admin(h.UploadProductImage))).Methods("POST")
	router.HandleFunc("/admin/products/{id}/image", h.metricsMiddleware("/admin/products/{id}/image", h.authmw.Admin(h.DeleteProductImage))).Methods("DELETE")
	router.HandleFunc("/admin/brands", h.metricsMiddleware("/admin/brands", h.authmw.Admin(h.CreateBrand))).Methods("POST")
	router.HandleFunc("/admin/brands", h.metricsMiddleware("/admin/brands", h.authmw.Admin(h.DeleteAllBrands))).Methods("DELETE")
	router.HandleFunc("/admin/brands/{id}", h.metricsMiddleware("/admin/brands/{id}", h.authmw.Admin(h.UpdateBrand))).Methods("PUT")
	router.HandleFunc("/admin/brands/{id}", h.metricsMiddleware("/admin/brands/{id}", h.authmw.Admin(h.DeleteBrand))).Methods("DELETE")
	router.HandleFunc("/admin/brands/{id}/image", h.metricsMiddleware("/admin/brands/{id}/image", h.authmw.Admin(h.UploadBrandImage))).Methods("POST")
	router.HandleFunc("/admin/categories", h.metricsMiddleware("/admin/categories", h.authmw.Admin(h.CreateCategory))).Methods("POST")
	router.HandleFunc("/admin/categories", h.metricsMiddleware("/admin/categories", h.authmw.Admin(h.DeleteAllCategories))).Methods("DELETE")
	router.HandleFunc("/admin/categories/{id}", h.metricsMiddleware("/admin/categories/{id}", h.authmw.Admin(h.UpdateCategory))).Methods("PUT")
	router.HandleFunc("/admin/categories/{id}", h.metricsMiddleware("/admin/categories/{id}", h.authmw.Admin(h.DeleteCategory))).Methods("DELETE")
	router.HandleFunc("/admin/categories/{id}/image", h.metricsMiddleware("/admin/categories/{id}/image", h.authmw.Admin(h.UploadCategoryImage))).Methods("POST")
}
