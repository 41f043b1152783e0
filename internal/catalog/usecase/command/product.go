package command

import (
	"context"
	"io"

	"github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/media"
)

// CreateProductCommand represents the command to create a product.
type CreateProductCommand struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  uint
	BrandID     uint
}

func (cmd CreateProductCommand) validate() error {
	if cmd.Name == "" {
		return apperr.Invalid("name", "is required")
	}
	if cmd.Price < 0 {
		return apperr.Invalid("price", "must not be negative")
	}
	if cmd.Stock < 0 {
		return apperr.Invalid("stock", "must not be negative")
	}
	if cmd.CategoryID == 0 {
		return apperr.Invalid("category_id", "is required")
	}
	if cmd.BrandID == 0 {
		return apperr.Invalid("brand_id", "is required")
	}
	return nil
}

// CreateProductHandler handles product creation. The brand and category
// must exist before the product row is written.
type CreateProductHandler struct {
	products   domain.ProductRepository
	brands     domain.BrandRepository
	categories domain.CategoryRepository
}

// NewCreateProductHandler creates a new create product handler.
func NewCreateProductHandler(products domain.ProductRepository, brands domain.BrandRepository, categories domain.CategoryRepository) *CreateProductHandler {
	return &CreateProductHandler{products: products, brands: brands, categories: categories}
}

// Handle executes the create product command.
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	if _, err := h.brands.FindByID(cmd.BrandID); err != nil {
		return nil, err
	}
	if _, err := h.categories.FindByID(cmd.CategoryID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Stock:       cmd.Stock,
		CategoryID:  cmd.CategoryID,
		BrandID:     cmd.BrandID,
		ImageURL:    domain.DefaultProductImageURL,
	}
	if err := h.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductCommand represents the command to update a product. Zero
// valued fields are left unchanged.
type UpdateProductCommand struct {
	ID          uint
	Name        string
	Description string
	Price       *float64
	Stock       *int
	CategoryID  uint
	BrandID     uint
}

// UpdateProductHandler handles product updates.
type UpdateProductHandler struct {
	products   domain.ProductRepository
	brands     domain.BrandRepository
	categories domain.CategoryRepository
}

// NewUpdateProductHandler creates a new update product handler.
func NewUpdateProductHandler(products domain.ProductRepository, brands domain.BrandRepository, categories domain.CategoryRepository) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, brands: brands, categories: categories}
}

// Handle executes the update product command.
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}

	product, err := h.products.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	if cmd.Description != "" {
		product.Description = cmd.Description
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, apperr.Invalid("price", "must not be negative")
		}
		product.Price = *cmd.Price
	}
	if cmd.Stock != nil {
		if *cmd.Stock < 0 {
			return nil, apperr.Invalid("stock", "must not be negative")
		}
		product.Stock = *cmd.Stock
	}
	if cmd.BrandID != 0 {
		if _, err := h.brands.FindByID(cmd.BrandID); err != nil {
			return nil, err
		}
		product.BrandID = cmd.BrandID
	}
	if cmd.CategoryID != 0 {
		if _, err := h.categories.FindByID(cmd.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = cmd.CategoryID
	}

	if err := h.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProductCommand represents the command to delete a product along
// with every row that references it.
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler routes product deletion through the cascade engine
// so cart and order totals stay consistent.
type DeleteProductHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteProductHandler creates a new delete product handler.
func NewDeleteProductHandler(cascader *integrity.Cascader) *DeleteProductHandler {
	return &DeleteProductHandler{cascader: cascader}
}

// Handle executes the delete product command.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	_, err := h.cascader.DeleteProduct(ctx, cmd.ID)
	return err
}

// DeleteAllProductsHandler wipes the product table and its dependents.
type DeleteAllProductsHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteAllProductsHandler creates a new delete all products handler.
func NewDeleteAllProductsHandler(cascader *integrity.Cascader) *DeleteAllProductsHandler {
	return &DeleteAllProductsHandler{cascader: cascader}
}

// Handle executes the delete all products command.
func (h *DeleteAllProductsHandler) Handle(ctx context.Context) error {
	return h.cascader.DeleteAllProducts(ctx)
}

// UploadProductImageCommand represents the command to attach an image to
// a product.
type UploadProductImageCommand struct {
	ProductID   uint
	Filename    string
	ContentType string
	File        io.Reader
}

// UploadProductImageHandler stores the image blob and writes the URL back
// onto the product.
type UploadProductImageHandler struct {
	products domain.ProductRepository
	blobs    media.BlobStore
}

// NewUploadProductImageHandler creates a new upload product image handler.
func NewUploadProductImageHandler(products domain.ProductRepository, blobs media.BlobStore) *UploadProductImageHandler {
	return &UploadProductImageHandler{products: products, blobs: blobs}
}

// Handle executes the upload product image command.
func (h *UploadProductImageHandler) Handle(cmd UploadProductImageCommand) (*domain.Product, error) {
	if cmd.ProductID == 0 {
		return nil, apperr.Invalid("product_id", "is required")
	}
	if cmd.File == nil {
		return nil, apperr.Invalid("file", "is required")
	}

	product, err := h.products.FindByID(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(cmd.File)
	if err != nil {
		return nil, err
	}

	url, err := h.blobs.Upload(cmd.ProductID, cmd.Filename, data, cmd.ContentType)
	if err != nil {
		return nil, err
	}

	product.ImageURL = url
	if err := h.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProductImageCommand represents the command to remove a product
// image.
type DeleteProductImageCommand struct {
	ProductID uint
}

// DeleteProductImageHandler removes the stored blobs and resets the image
// URL to the default placeholder.
type DeleteProductImageHandler struct {
	products domain.ProductRepository
	blobs    media.BlobStore
}

// NewDeleteProductImageHandler creates a new delete product image handler.
func NewDeleteProductImageHandler(products domain.ProductRepository, blobs media.BlobStore) *DeleteProductImageHandler {
	return &DeleteProductImageHandler{products: products, blobs: blobs}
}

// Handle executes the delete product image command.
func (h *DeleteProductImageHandler) Handle(cmd DeleteProductImageCommand) (*domain.Product, error) {
	if cmd.ProductID == 0 {
		return nil, apperr.Invalid("product_id", "is required")
	}

	product, err := h.products.FindByID(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if err := h.blobs.Delete(cmd.ProductID); err != nil {
		return nil, err
	}

	product.ImageURL = domain.DefaultProductImageURL
	if err := h.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
