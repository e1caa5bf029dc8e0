package storage

import (
	"context"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

const (
	RoleThumbnail = "thumbnail"
	RoleImage     = "images"
)

type FileStorage interface {
	// SaveFile stores the uploaded file under the directory (or object prefix)
	// for the given role and returns the generated filename.
	SaveFile(ctx context.Context, file *multipart.FileHeader, role string) (string, error)

	// DeleteFile removes a previously stored file. A file that is already gone
	// is not an error; anything else is.
	DeleteFile(ctx context.Context, filename string, role string) error
}

// GenerateFilename builds a collision-resistant name of the form
// <unix-ms>-<random-integer><ext>, keeping the original extension. Uploaded
// names are never used as stored names.
func GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}
