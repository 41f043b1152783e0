// Package media defines the blob-store collaborator consumed for entity
// images. The hosting itself is external; this layer only owns the
// contract and the placeholder write-back on delete.
package media

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore is the consumed contract for binary object hosting, keyed by
// owner id and filename.
type BlobStore interface {
	Upload(ownerID uint, filename string, data []byte, contentType string) (string, error)
	Get(ownerID uint, filename string) (string, error)
	Delete(ownerID uint) error
	List(ownerID uint) ([]string, error)
}

// FSBlobStore is a filesystem-backed BlobStore used in development and
// tests. Objects live under root/<ownerID>/ and URLs are served from
// baseURL.
type FSBlobStore struct {
	root    string
	baseURL string
}

// NewFSBlobStore creates a filesystem blob store rooted at root.
func NewFSBlobStore(root, baseURL string) (*FSBlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &FSBlobStore{root: root, baseURL: baseURL}, nil
}

func (s *FSBlobStore) ownerDir(ownerID uint) string {
	return filepath.Join(s.root, fmt.Sprintf("%d", ownerID))
}

// Upload stores data under the owner and returns its URL. The stored name
// gets a random prefix so repeated uploads of the same filename never
// collide. When the filename carries no extension, one is derived from
// contentType so static file servers keep serving the right media type.
func (s *FSBlobStore) Upload(ownerID uint, filename string, data []byte, contentType string) (string, error) {
	dir := s.ownerDir(ownerID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create owner dir: %w", err)
	}

	name := uuid.NewString() + "_" + filepath.Base(filename)
	if filepath.Ext(name) == "" && contentType != "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			name += exts[0]
		}
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return s.url(ownerID, name), nil
}

func (s *FSBlobStore) Get(ownerID uint, filename string) (string, error) {
	path := filepath.Join(s.ownerDir(ownerID), filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("blob not found: %w", err)
	}
	return s.url(ownerID, filename), nil
}

// Delete removes every object owned by ownerID.
func (s *FSBlobStore) Delete(ownerID uint) error {
	if err := os.RemoveAll(s.ownerDir(ownerID)); err != nil {
		return fmt.Errorf("failed to delete blobs: %w", err)
	}
	return nil
}

func (s *FSBlobStore) List(ownerID uint) ([]string, error) {
	entries, err := os.ReadDir(s.ownerDir(ownerID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}

	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			urls = append(urls, s.url(ownerID, entry.Name()))
		}
	}
	return urls, nil
}

func (s *FSBlobStore) url(ownerID uint, name string) string {
	return fmt.Sprintf("%s/%d/%s", s.baseURL, ownerID, name)
}
