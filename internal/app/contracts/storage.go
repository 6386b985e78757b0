package contracts

import (
	"context"
	"io"
)

type Storage interface {
	// UploadFile stores the object and returns a URL it can be fetched from.
	UploadFile(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) (string, error)
}
