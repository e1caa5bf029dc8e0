package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
)

type localStorage struct {
	baseDir string
}

// NewLocalStorage creates a filesystem-backed store rooted at baseDir, with
// one subdirectory per upload role.
func NewLocalStorage(baseDir string) (FileStorage, error) {
	for _, role := range []string{RoleThumbnail, RoleImage} {
		if err := os.MkdirAll(filepath.Join(baseDir, role), os.ModePerm); err != nil {
			return nil, err
		}
	}
	return &localStorage{baseDir: baseDir}, nil
}

func (s *localStorage) SaveFile(ctx context.Context, file *multipart.FileHeader, role string) (string, error) {
	name := GenerateFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.baseDir, role, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

func (s *localStorage) DeleteFile(ctx context.Context, filename string, role string) error {
	err := os.Remove(filepath.Join(s.baseDir, role, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
