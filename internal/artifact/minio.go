package artifact

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/smallbiznis/fairstyle/internal/config"
)

// MinioStore keeps artifacts in an S3-compatible bucket for multi-node
// deployments where a local directory won't do.
type MinioStore struct {
	client *minio.Client
	bucket string
	public string
}

func NewMinioStore(cfg config.MinioConfig) (*MinioStore, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	if endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	scheme := "http"
	if cfg.Secure {
		scheme = "https"
	}

	return &MinioStore{
		client: client,
		bucket: cfg.Bucket,
		public: fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket),
	}, nil
}

func (s *MinioStore) Put(ctx context.Context, txnID string, data []byte) (string, error) {
	object := txnID + ".png"
	_, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPutFailed, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, object), nil
}

func (s *MinioStore) PublicURL(txnID string) string {
	return s.public + "/" + txnID + ".png"
}
