package object

import (
	"context"
	"io"
)

// ObjectStore is the asset store contract: binary objects addressed by a
// server-generated file name under a single configured root. Delete is a
// no-op for missing files.
type ObjectStore interface {
	Save(ctx context.Context, fileName string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, fileName string) (io.ReadCloser, error)
	Exists(ctx context.Context, fileName string) (bool, error)
	Delete(ctx context.Context, fileName string) error
}
