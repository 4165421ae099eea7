// Package storage wraps "store bytes, return a durable retrieval URL" for
// uploaded images. Failures propagate to the caller unmodified; no retry and
// no compensating delete is attempted.
package storage

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// objectName prefixes a random identifier to the original file name so that
// repeated uploads of the same file never collide.
func objectName(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	return uuid.New().String() + "-" + base
}
