package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedName = regexp.MustCompile(`^\d+-\d+\.jpg$`)

func newFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("thumbnail", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["thumbnail"][0]
}

func TestLocalStorageSaveFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	file := newFileHeader(t, "soup.jpg", "jpeg bytes")
	name, err := store.SaveFile(context.Background(), file, RoleThumbnail)
	require.NoError(t, err)

	assert.Regexp(t, generatedName, name)
	assert.NotEqual(t, "soup.jpg", name)

	data, err := os.ReadFile(filepath.Join(dir, RoleThumbnail, name))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestLocalStorageSaveFileDistinctNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	file := newFileHeader(t, "soup.jpg", "jpeg bytes")
	first, err := store.SaveFile(context.Background(), file, RoleThumbnail)
	require.NoError(t, err)
	second, err := store.SaveFile(context.Background(), file, RoleThumbnail)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorageDeleteFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	file := newFileHeader(t, "soup.jpg", "jpeg bytes")
	name, err := store.SaveFile(context.Background(), file, RoleThumbnail)
	require.NoError(t, err)

	require.NoError(t, store.DeleteFile(context.Background(), name, RoleThumbnail))
	_, err = os.Stat(filepath.Join(dir, RoleThumbnail, name))
	assert.True(t, os.IsNotExist(err))

	// deleting an already-missing file is not an error
	assert.NoError(t, store.DeleteFile(context.Background(), name, RoleThumbnail))
}

func TestGenerateFilenameKeepsExtensionLowercased(t *testing.T) {
	name := GenerateFilename("Dinner Photo.PNG")
	assert.Regexp(t, `^\d+-\d+\.png$`, name)
}
