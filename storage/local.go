package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
)

// LocalStore writes uploads under a local directory served by the static
// /uploads route. It predates the S3 backend and remains the fallback when
// no bucket is configured.
type LocalStore struct {
	Dir string
	// URLPrefix is the public path the directory is served under.
	URLPrefix string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Dir: dir, URLPrefix: "/uploads"}
}

func (l *LocalStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := objectName(file.Filename)
	dst, err := os.Create(filepath.Join(l.Dir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join(l.URLPrefix, key), nil
}
