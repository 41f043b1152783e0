package command

import (
	"context"
	"io"

	"github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/media"
)

// CreateBrandCommand represents the command to create a brand.
type CreateBrandCommand struct {
	Name string
}

// CreateBrandHandler handles brand creation.
type CreateBrandHandler struct {
	repo domain.BrandRepository
}

// NewCreateBrandHandler creates a new create brand handler.
func NewCreateBrandHandler(repo domain.BrandRepository) *CreateBrandHandler {
	return &CreateBrandHandler{repo: repo}
}

// Handle executes the create brand command.
func (h *CreateBrandHandler) Handle(cmd CreateBrandCommand) (*domain.Brand, error) {
	if cmd.Name == "" {
		return nil, apperr.Invalid("name", "is required")
	}
	brand := &domain.Brand{Name: cmd.Name, ImageURL: domain.DefaultGroupImageURL}
	if err := h.repo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UpdateBrandCommand represents the command to rename a brand.
type UpdateBrandCommand struct {
	ID   uint
	Name string
}

// UpdateBrandHandler handles brand updates.
type UpdateBrandHandler struct {
	repo domain.BrandRepository
}

// NewUpdateBrandHandler creates a new update brand handler.
func NewUpdateBrandHandler(repo domain.BrandRepository) *UpdateBrandHandler {
	return &UpdateBrandHandler{repo: repo}
}

// Handle executes the update brand command.
func (h *UpdateBrandHandler) Handle(cmd UpdateBrandCommand) (*domain.Brand, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	brand, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.Name != "" {
		brand.Name = cmd.Name
	}
	if err := h.repo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrandCommand represents the command to delete a brand and every
// product under it.
type DeleteBrandCommand struct {
	ID uint
}

// DeleteBrandHandler routes brand deletion through the cascade engine.
type DeleteBrandHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteBrandHandler creates a new delete brand handler.
func NewDeleteBrandHandler(cascader *integrity.Cascader) *DeleteBrandHandler {
	return &DeleteBrandHandler{cascader: cascader}
}

// Handle executes the delete brand command.
func (h *DeleteBrandHandler) Handle(ctx context.Context, cmd DeleteBrandCommand) error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	_, err := h.cascader.DeleteBrand(ctx, cmd.ID)
	return err
}

// DeleteAllBrandsHandler wipes all brands together with their products.
type DeleteAllBrandsHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteAllBrandsHandler creates a new delete all brands handler.
func NewDeleteAllBrandsHandler(cascader *integrity.Cascader) *DeleteAllBrandsHandler {
	return &DeleteAllBrandsHandler{cascader: cascader}
}

// Handle executes the delete all brands command.
func (h *DeleteAllBrandsHandler) Handle(ctx context.Context) error {
	return h.cascader.DeleteAllBrands(ctx)
}

// CreateCategoryCommand represents the command to create a category.
type CreateCategoryCommand struct {
	Name string
}

// CreateCategoryHandler handles category creation.
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler.
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command.
func (h *CreateCategoryHandler) Handle(cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, apperr.Invalid("name", "is required")
	}
	category := &domain.Category{Name: cmd.Name, ImageURL: domain.DefaultGroupImageURL}
	if err := h.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategoryCommand represents the command to rename a category.
type UpdateCategoryCommand struct {
	ID   uint
	Name string
}

// UpdateCategoryHandler handles category updates.
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler.
func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command.
func (h *UpdateCategoryHandler) Handle(cmd UpdateCategoryCommand) (*domain.Category, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	category, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.Name != "" {
		category.Name = cmd.Name
	}
	if err := h.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategoryCommand represents the command to delete a category and
// every product under it.
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler routes category deletion through the cascade
// engine.
type DeleteCategoryHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteCategoryHandler creates a new delete category handler.
func NewDeleteCategoryHandler(cascader *integrity.Cascader) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{cascader: cascader}
}

// Handle executes the delete category command.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	_, err := h.cascader.DeleteCategory(ctx, cmd.ID)
	return err
}

// DeleteAllCategoriesHandler wipes all categories together with their
// products.
type DeleteAllCategoriesHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteAllCategoriesHandler creates a new delete all categories handler.
func NewDeleteAllCategoriesHandler(cascader *integrity.Cascader) *DeleteAllCategoriesHandler {
	return &DeleteAllCategoriesHandler{cascader: cascader}
}

// Handle executes the delete all categories command.
func (h *DeleteAllCategoriesHandler) Handle(ctx context.Context) error {
	return h.cascader.DeleteAllCategories(ctx)
}

// UploadGroupImageCommand attaches an image to a brand or a category.
type UploadGroupImageCommand struct {
	ID          uint
	Filename    string
	ContentType string
	File        io.Reader
}

// UploadBrandImageHandler stores the image blob and writes the URL back
// onto the brand.
type UploadBrandImageHandler struct {
	repo  domain.BrandRepository
	blobs media.BlobStore
}

// NewUploadBrandImageHandler creates a new upload brand image handler.
func NewUploadBrandImageHandler(repo domain.BrandRepository, blobs media.BlobStore) *UploadBrandImageHandler {
	return &UploadBrandImageHandler{repo: repo, blobs: blobs}
}

// Handle executes the upload brand image command.
func (h *UploadBrandImageHandler) Handle(cmd UploadGroupImageCommand) (*domain.Brand, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	if cmd.File == nil {
		return nil, apperr.Invalid("file", "is required")
	}
	brand, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(cmd.File)
	if err != nil {
		return nil, err
	}
	url, err := h.blobs.Upload(cmd.ID, cmd.Filename, data, cmd.ContentType)
	if err != nil {
		return nil, err
	}
	brand.ImageURL = url
	if err := h.repo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UploadCategoryImageHandler stores the image blob and writes the URL
// back onto the category.
type UploadCategoryImageHandler struct {
	repo  domain.CategoryRepository
	blobs media.BlobStore
}

// NewUploadCategoryImageHandler creates a new upload category image handler.
func NewUploadCategoryImageHandler(repo domain.CategoryRepository, blobs media.BlobStore) *UploadCategoryImageHandler {
	return &UploadCategoryImageHandler{repo: repo, blobs: blobs}
}

// Handle executes the upload category image command.
func (h *UploadCategoryImageHandler) Handle(cmd UploadGroupImageCommand) (*domain.Category, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	if cmd.File == nil {
		return nil, apperr.Invalid("file", "is required")
	}
	category, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(cmd.File)
	if err != nil {
		return nil, err
	}
	url, err := h.blobs.Upload(cmd.ID, cmd.Filename, data, cmd.ContentType)
	if err != nil {
		return nil, err
	}
	category.ImageURL = url
	if err := h.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}
