package store

import (
	"context"

	"github.com/marmos91/archreg/pkg/registry/models"
)

// Registry is the persistent archiver registry contract consumed by the
// orchestration layer above this package.
//
// All operations are short-lived synchronous units of work. Callers that
// need timeouts impose them through the context; the registry performs no
// internal retries.
type Registry interface {
	// GetArchiver looks up a node by id. Absent nodes return (nil, nil).
	GetArchiver(ctx context.Context, nodeID int64) (*models.ArchiverNode, error)

	// AddArchiver registers a node and returns its assigned id.
	// nodeName may be nil to request the archiver_<id> default.
	AddArchiver(ctx context.Context, nodeName *string, nodeHost string) (int64, error)

	// RemoveArchiver deletes a node by id.
	RemoveArchiver(ctx context.Context, nodeID int64) error

	// ListArchivers returns all nodes ordered by id.
	ListArchivers(ctx context.Context) ([]*models.ArchiverNode, error)

	// Healthcheck verifies the backing store is reachable.
	Healthcheck(ctx context.Context) error

	// Close releases the underlying database resources.
	Close() error
}
