package command

import (
	"io"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/media"
	"github.com/nvasilev/storefront/internal/user/domain"
)

// UploadAvatarCommand represents the command to upload a user avatar.
type UploadAvatarCommand struct {
	UserID      uint
	Filename    string
	ContentType string
	File        io.Reader
}

// UploadAvatarHandler stores the avatar blob and writes the resulting URL
// back onto the user record.
type UploadAvatarHandler struct {
	repo  domain.UserRepository
	blobs media.BlobStore
}

// NewUploadAvatarHandler creates a new upload avatar handler.
func NewUploadAvatarHandler(repo domain.UserRepository, blobs media.BlobStore) *UploadAvatarHandler {
	return &UploadAvatarHandler{repo: repo, blobs: blobs}
}

// Handle executes the upload avatar command.
func (h *UploadAvatarHandler) Handle(cmd UploadAvatarCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Invalid("user_id", "is required")
	}
	if cmd.File == nil {
		return nil, apperr.Invalid("file", "is required")
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(cmd.File)
	if err != nil {
		return nil, err
	}

	url, err := h.blobs.Upload(cmd.UserID, cmd.Filename, data, cmd.ContentType)
	if err != nil {
		return nil, err
	}

	user.ImageURL = url
	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAvatarCommand represents the command to remove a user avatar.
type DeleteAvatarCommand struct {
	UserID uint
}

// DeleteAvatarHandler removes the stored blobs and resets the user image
// to the default placeholder so the record never points at a dead URL.
type DeleteAvatarHandler struct {
	repo  domain.UserRepository
	blobs media.BlobStore
}

// NewDeleteAvatarHandler creates a new delete avatar handler.
func NewDeleteAvatarHandler(repo domain.UserRepository, blobs media.BlobStore) *DeleteAvatarHandler {
	return &DeleteAvatarHandler{repo: repo, blobs: blobs}
}

// Handle executes the delete avatar command.
func (h *DeleteAvatarHandler) Handle(cmd DeleteAvatarCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Invalid("user_id", "is required")
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := h.blobs.Delete(cmd.UserID); err != nil {
		return nil, err
	}

	user.ImageURL = domain.DefaultAvatarURL
	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
