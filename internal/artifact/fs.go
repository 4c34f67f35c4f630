package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FSStore writes artifacts to a local directory, the default for the
// embedded single-node deployment.
type FSStore struct {
	dir     string
	baseURL string
}

func NewFSStore(dir, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FSStore{dir: dir, baseURL: baseURL}, nil
}

func (s *FSStore) Put(ctx context.Context, txnID string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, txnID+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPutFailed, err)
	}
	return path, nil
}

func (s *FSStore) PublicURL(txnID string) string {
	return s.baseURL + "/outputs/" + txnID + ".png"
}

// Dir returns the directory artifacts are written to, for static serving.
func (s *FSStore) Dir() string { return s.dir }
