// Package artifact persists generated images addressed by transaction id.
package artifact

import (
	"context"
	"errors"
)

// Store is the artifact store collaborator. Locations are opaque
// strings recorded on the inference log.
type Store interface {
	// Put persists data under the transaction id and returns its location.
	Put(ctx context.Context, txnID string, data []byte) (string, error)
	// PublicURL returns the caller-facing URL for a stored artifact.
	PublicURL(txnID string) string
}

var ErrPutFailed = errors.New("artifact_put_failed")
