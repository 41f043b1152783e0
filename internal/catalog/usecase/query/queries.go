package query

import (
	"github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
)

// GetProductQuery represents the query to fetch one product.
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles single product lookups.
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler.
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query.
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	return h.repo.FindByID(q.ID)
}

// ListProductsQuery represents the query to fetch a page of products,
// optionally filtered by brand or category.
type ListProductsQuery struct {
	Limit      int
	Offset     int
	BrandID    uint
	CategoryID uint
}

// ListProductsHandler handles listing products.
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler.
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query.
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	if q.BrandID != 0 {
		return h.repo.FindByBrandID(q.BrandID)
	}
	if q.CategoryID != 0 {
		return h.repo.FindByCategoryID(q.CategoryID)
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return h.repo.FindAll(q.Limit, q.Offset)
}

// GetBrandQuery represents the query to fetch one brand.
type GetBrandQuery struct {
	ID uint
}

// GetBrandHandler handles single brand lookups.
type GetBrandHandler struct {
	repo domain.BrandRepository
}

// NewGetBrandHandler creates a new get brand handler.
func NewGetBrandHandler(repo domain.BrandRepository) *GetBrandHandler {
	return &GetBrandHandler{repo: repo}
}

// Handle executes the get brand query.
func (h *GetBrandHandler) Handle(q GetBrandQuery) (*domain.Brand, error) {
	if q.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	return h.repo.FindByID(q.ID)
}

// ListBrandsHandler handles listing all brands.
type ListBrandsHandler struct {
	repo domain.BrandRepository
}

// NewListBrandsHandler creates a new list brands handler.
func NewListBrandsHandler(repo domain.BrandRepository) *ListBrandsHandler {
	return &ListBrandsHandler{repo: repo}
}

// Handle executes the list brands query.
func (h *ListBrandsHandler) Handle() ([]domain.Brand, error) {
	return h.repo.FindAll()
}

// GetCategoryQuery represents the query to fetch one category.
type GetCategoryQuery struct {
	ID uint
}

// GetCategoryHandler handles single category lookups.
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler.
func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query.
func (h *GetCategoryHandler) Handle(q GetCategoryQuery) (*domain.Category, error) {
	if q.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	return h.repo.FindByID(q.ID)
}

// ListCategoriesHandler handles listing all categories.
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler.
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query.
func (h *ListCategoriesHandler) Handle() ([]domain.Category, error) {
	return h.repo.FindAll()
}
