package query

import (
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/user/domain"
)

// GetUserQuery represents the query to fetch one user.
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles single user lookups.
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler.
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query.
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	if q.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	return h.repo.FindByID(q.ID)
}

// ListUsersQuery represents the query to fetch a page of users.
type ListUsersQuery struct {
	Limit  int
	Offset int
}

// ListUsersHandler handles listing users.
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler.
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query.
func (h *ListUsersHandler) Handle(q ListUsersQuery) ([]domain.User, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return h.repo.FindAll(q.Limit, q.Offset)
}

// ListAddressesQuery represents the query to fetch a user's addresses.
type ListAddressesQuery struct {
	UserID uint
}

// ListAddressesHandler handles listing the addresses of one user.
type ListAddressesHandler struct {
	repo domain.AddressRepository
}

// NewListAddressesHandler creates a new list addresses handler.
func NewListAddressesHandler(repo domain.AddressRepository) *ListAddressesHandler {
	return &ListAddressesHandler{repo: repo}
}

// Handle executes the list addresses query.
func (h *ListAddressesHandler) Handle(q ListAddressesQuery) ([]domain.Address, error) {
	if q.UserID == 0 {
		return nil, apperr.Invalid("user_id", "is required")
	}
	return h.repo.FindByUserID(q.UserID)
}
