package command

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
)

// The unused interface methods of the embedded nil repositories panic when
// reached; these tests only exercise the methods implemented below.

type fakeProducts struct {
	domain.ProductRepository
	products map[uint]*domain.Product
}

func (f *fakeProducts) FindByID(id uint) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) Update(p *domain.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return fmt.Errorf("product %d: %w", p.ID, apperr.ErrNotFound)
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

type fakeBrands struct {
	domain.BrandRepository
	brands map[uint]*domain.Brand
}

func (f *fakeBrands) FindByID(id uint) (*domain.Brand, error) {
	b, ok := f.brands[id]
	if !ok {
		return nil, fmt.Errorf("brand %d: %w", id, apperr.ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBrands) Update(b *domain.Brand) error {
	if _, ok := f.brands[b.ID]; !ok {
		return fmt.Errorf("brand %d: %w", b.ID, apperr.ErrNotFound)
	}
	cp := *b
	f.brands[b.ID] = &cp
	return nil
}

type fakeCategories struct {
	domain.CategoryRepository
	categories map[uint]*domain.Category
}

func (f *fakeCategories) FindByID(id uint) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", id, apperr.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategories) Update(c *domain.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return fmt.Errorf("category %d: %w", c.ID, apperr.ErrNotFound)
	}
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

// recordingBlobStore records the last upload so tests can assert on what
// the handler actually handed over.
type recordingBlobStore struct {
	ownerID     uint
	filename    string
	data        []byte
	contentType string
	deleted     []uint
}

func (f *recordingBlobStore) Upload(ownerID uint, filename string, data []byte, contentType string) (string, error) {
	f.ownerID = ownerID
	f.filename = filename
	f.data = append([]byte(nil), data...)
	f.contentType = contentType
	return fmt.Sprintf("http://blobs.local/%d/%s", ownerID, filename), nil
}

func (f *recordingBlobStore) Get(ownerID uint, filename string) (string, error) {
	return fmt.Sprintf("http://blobs.local/%d/%s", ownerID, filename), nil
}

func (f *recordingBlobStore) Delete(ownerID uint) error {
	f.deleted = append(f.deleted, ownerID)
	return nil
}

func (f *recordingBlobStore) List(ownerID uint) ([]string, error) {
	return nil, nil
}

func TestUploadProductImageHandler_Handle(t *testing.T) {
	products := &fakeProducts{products: map[uint]*domain.Product{
		10: {ID: 10, Name: "Keyboard", ImageURL: domain.DefaultProductImageURL},
	}}
	blobs := &recordingBlobStore{}
	handler := NewUploadProductImageHandler(products, blobs)

	product, err := handler.Handle(UploadProductImageCommand{
		ProductID:   10,
		Filename:    "keyboard.jpg",
		ContentType: "image/jpeg",
		File:        bytes.NewReader([]byte("jpeg-bytes")),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(10), blobs.ownerID)
	assert.Equal(t, []byte("jpeg-bytes"), blobs.data)
	assert.Equal(t, "image/jpeg", blobs.contentType)

	assert.Equal(t, "http://blobs.local/10/keyboard.jpg", product.ImageURL)
	stored, err := products.FindByID(10)
	require.NoError(t, err)
	assert.Equal(t, "http://blobs.local/10/keyboard.jpg", stored.ImageURL)
}

func TestUploadProductImageHandler_Validation(t *testing.T) {
	handler := NewUploadProductImageHandler(&fakeProducts{}, &recordingBlobStore{})

	_, err := handler.Handle(UploadProductImageCommand{Filename: "x.jpg", File: bytes.NewReader(nil)})
	assert.True(t, apperr.IsValidation(err))

	_, err = handler.Handle(UploadProductImageCommand{ProductID: 10, Filename: "x.jpg"})
	assert.True(t, apperr.IsValidation(err))
}

func TestDeleteProductImageHandler_ResetsToDefault(t *testing.T) {
	products := &fakeProducts{products: map[uint]*domain.Product{
		10: {ID: 10, ImageURL: "http://blobs.local/10/keyboard.jpg"},
	}}
	blobs := &recordingBlobStore{}
	handler := NewDeleteProductImageHandler(products, blobs)

	product, err := handler.Handle(DeleteProductImageCommand{ProductID: 10})
	require.NoError(t, err)

	assert.Equal(t, []uint{10}, blobs.deleted)
	assert.Equal(t, domain.DefaultProductImageURL, product.ImageURL)
}

func TestUploadBrandImageHandler_Handle(t *testing.T) {
	brands := &fakeBrands{brands: map[uint]*domain.Brand{
		3: {ID: 3, Name: "Logi", ImageURL: domain.DefaultGroupImageURL},
	}}
	blobs := &recordingBlobStore{}
	handler := NewUploadBrandImageHandler(brands, blobs)

	brand, err := handler.Handle(UploadGroupImageCommand{
		ID:          3,
		Filename:    "logo.png",
		ContentType: "image/png",
		File:        bytes.NewReader([]byte("png-bytes")),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), blobs.ownerID)
	assert.Equal(t, []byte("png-bytes"), blobs.data)
	assert.Equal(t, "image/png", blobs.contentType)
	assert.Equal(t, "http://blobs.local/3/logo.png", brand.ImageURL)
}

func TestUploadCategoryImageHandler_Handle(t *testing.T) {
	categories := &fakeCategories{categories: map[uint]*domain.Category{
		5: {ID: 5, Name: "Peripherals", ImageURL: domain.DefaultGroupImageURL},
	}}
	blobs := &recordingBlobStore{}
	handler := NewUploadCategoryImageHandler(categories, blobs)

	category, err := handler.Handle(UploadGroupImageCommand{
		ID:          5,
		Filename:    "shelf.png",
		ContentType: "image/png",
		File:        bytes.NewReader([]byte("png-bytes")),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), blobs.ownerID)
	assert.Equal(t, "image/png", blobs.contentType)
	assert.Equal(t, "http://blobs.local/5/shelf.png", category.ImageURL)
}
