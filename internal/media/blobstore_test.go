package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FSBlobStore {
	t.Helper()
	store, err := NewFSBlobStore(t.TempDir(), "http://blobs.local")
	require.NoError(t, err)
	return store
}

func TestFSBlobStore_Upload(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Upload(7, "avatar.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://blobs.local/7/"))
	assert.True(t, strings.HasSuffix(url, "_avatar.png"))

	urls, err := store.List(7)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, url, urls[0])

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(store.root, "7", name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestFSBlobStore_Upload_ExtensionFromContentType(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Upload(7, "avatar", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "_avatar.png"))
}

func TestFSBlobStore_Upload_SameFilenameDoesNotCollide(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Upload(7, "avatar.png", []byte("one"), "image/png")
	require.NoError(t, err)
	second, err := store.Upload(7, "avatar.png", []byte("two"), "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	urls, err := store.List(7)
	require.NoError(t, err)
	assert.Len(t, urls, 2)
}

func TestFSBlobStore_Get(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Upload(7, "avatar.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	got, err := store.Get(7, filepath.Base(url))
	require.NoError(t, err)
	assert.Equal(t, url, got)

	_, err = store.Get(7, "missing.png")
	assert.Error(t, err)
}

func TestFSBlobStore_Delete(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Upload(7, "avatar.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(7))

	urls, err := store.List(7)
	require.NoError(t, err)
	assert.Empty(t, urls)
}
