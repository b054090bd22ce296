package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/SagarBajaj14/CelestAI.io/internal/pkg/metrics"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/storage"
	"github.com/minio/minio-go/v7"
)

// Client wraps minio.Client for the chart archive
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

func NewClient(client *minio.Client, bucket string, log *slog.Logger) storage.IS3Client {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// PutFile uploads data under path
func (c *Client) PutFile(ctx context.Context, path string, data []byte, contentType string) error {
	info, err := c.client.PutObject(ctx, c.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	metrics.Global().ArchivedCharts.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", path, err)
	}

	c.log.Debug("object stored", "bucket", c.bucket, "key", info.Key, "size", info.Size)
	return nil
}
