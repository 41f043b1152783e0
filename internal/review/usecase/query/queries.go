package query

import (
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/review/domain"
)

// ListProductReviewsQuery represents the query for a product's reviews.
type ListProductReviewsQuery struct {
	ProductID uint
}

// ListProductReviewsHandler handles listing the reviews of one product.
type ListProductReviewsHandler struct {
	reviews domain.ReviewRepository
}

// NewListProductReviewsHandler creates a new list product reviews handler.
func NewListProductReviewsHandler(reviews domain.ReviewRepository) *ListProductReviewsHandler {
	return &ListProductReviewsHandler{reviews: reviews}
}

// Handle executes the list product reviews query.
func (h *ListProductReviewsHandler) Handle(q ListProductReviewsQuery) ([]domain.Review, error) {
	if q.ProductID == 0 {
		return nil, apperr.Invalid("product_id", "is required")
	}
	return h.reviews.FindByProductID(q.ProductID)
}

// ListUserReviewsQuery represents the query for a user's reviews.
type ListUserReviewsQuery struct {
	UserID uint
}

// ListUserReviewsHandler handles listing the reviews of one user.
type ListUserReviewsHandler struct {
	reviews domain.ReviewRepository
}

// NewListUserReviewsHandler creates a new list user reviews handler.
func NewListUserReviewsHandler(reviews domain.ReviewRepository) *ListUserReviewsHandler {
	return &ListUserReviewsHandler{reviews: reviews}
}

// Handle executes the list user reviews query.
func (h *ListUserReviewsHandler) Handle(q ListUserReviewsQuery) ([]domain.Review, error) {
	if q.UserID == 0 {
		return nil, apperr.Invalid("user_id", "is required")
	}
	return h.reviews.FindByUserID(q.UserID)
}
