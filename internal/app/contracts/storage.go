package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, file io.Reader, size int64, objectName, contentType, bucketName string) (string, error)
	GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
