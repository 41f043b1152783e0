package command

import (
	catalogdomain "github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/review/domain"
	userdomain "github.com/nvasilev/storefront/internal/user/domain"
)

// CreateReviewCommand represents the command to review a product.
type CreateReviewCommand struct {
	UserID    uint
	ProductID uint
	Rating    int
	Comment   string
}

func (cmd CreateReviewCommand) validate() error {
	if cmd.UserID == 0 {
		return apperr.Invalid("user_id", "is required")
	}
	if cmd.ProductID == 0 {
		return apperr.Invalid("product_id", "is required")
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return apperr.Invalid("rating", "must be between 1 and 5")
	}
	return nil
}

// CreateReviewHandler handles review creation. Both referenced rows must
// exist before the review is written.
type CreateReviewHandler struct {
	reviews  domain.ReviewRepository
	users    userdomain.UserRepository
	products catalogdomain.ProductRepository
}

// NewCreateReviewHandler creates a new create review handler.
func NewCreateReviewHandler(reviews domain.ReviewRepository, users userdomain.UserRepository, products catalogdomain.ProductRepository) *CreateReviewHandler {
	return &CreateReviewHandler{reviews: reviews, users: users, products: products}
}

// Handle executes the create review command.
func (h *CreateReviewHandler) Handle(cmd CreateReviewCommand) (*domain.Review, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	if _, err := h.users.FindByID(cmd.UserID); err != nil {
		return nil, err
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Rating:    cmd.Rating,
		Comment:   cmd.Comment,
	}
	if err := h.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReviewCommand represents the command to edit a review.
type UpdateReviewCommand struct {
	ID      uint
	Rating  int
	Comment string
}

// UpdateReviewHandler handles review edits.
type UpdateReviewHandler struct {
	reviews domain.ReviewRepository
}

// NewUpdateReviewHandler creates a new update review handler.
func NewUpdateReviewHandler(reviews domain.ReviewRepository) *UpdateReviewHandler {
	return &UpdateReviewHandler{reviews: reviews}
}

// Handle executes the update review command.
func (h *UpdateReviewHandler) Handle(cmd UpdateReviewCommand) (*domain.Review, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	review, err := h.reviews.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.Rating != 0 {
		if cmd.Rating < 1 || cmd.Rating > 5 {
			return nil, apperr.Invalid("rating", "must be between 1 and 5")
		}
		review.Rating = cmd.Rating
	}
	if cmd.Comment != "" {
		review.Comment = cmd.Comment
	}
	if err := h.reviews.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReviewCommand represents the command to delete one review.
type DeleteReviewCommand struct {
	ID uint
}

// DeleteReviewHandler deletes a single review. Reviews are leaves, no
// cascade applies.
type DeleteReviewHandler struct {
	reviews domain.ReviewRepository
}

// NewDeleteReviewHandler creates a new delete review handler.
func NewDeleteReviewHandler(reviews domain.ReviewRepository) *DeleteReviewHandler {
	return &DeleteReviewHandler{reviews: reviews}
}

// Handle executes the delete review command.
func (h *DeleteReviewHandler) Handle(cmd DeleteReviewCommand) error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	return h.reviews.Delete(cmd.ID)
}
