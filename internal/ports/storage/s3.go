package storage

import "context"

// IS3Client is an S3-compatible object store (MinIO)
type IS3Client interface {
	PutFile(ctx context.Context, path string, data []byte, contentType string) error
}
