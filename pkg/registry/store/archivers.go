package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marmos91/archreg/pkg/registry/models"
)

// ============================================
// ARCHIVER OPERATIONS
// ============================================

// GetArchiver looks up an archiver node by id.
//
// A missing node is a normal outcome, not an error: the method returns
// (nil, nil). The returned node is a copy owned by the caller; it shares no
// storage with query internals. An error is returned only when the lookup
// itself could not execute.
func (s *GORMStore) GetArchiver(ctx context.Context, nodeID int64) (node *models.ArchiverNode, err error) {
	defer func() { s.recordOp("get", err) }()

	var result models.ArchiverNode
	if err := s.db.WithContext(ctx).Where("node_id = ?", nodeID).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query archiver %d: %w", nodeID, err)
	}
	return &result, nil
}

// AddArchiver registers a new archiver node and returns its assigned id.
//
// nodeName may be nil, in which case the name defaults to
// "archiver_<nodeId>" computed from the id the database actually assigned,
// inside the same transaction as the insert. Two concurrent callers can
// therefore never collide on a predicted id. nodeHost is required.
//
// The id is drawn from the table's auto-increment sequence as part of the
// insert, so no two calls can ever receive the same id. A failed attempt
// leaves no row behind; the drawn sequence value is simply abandoned (gaps
// are acceptable, duplicates are not).
func (s *GORMStore) AddArchiver(ctx context.Context, nodeName *string, nodeHost string) (nodeID int64, err error) {
	defer func() { s.recordOp("add", err) }()

	if nodeHost == "" {
		return 0, models.ErrHostRequired
	}

	node := &models.ArchiverNode{NodeHost: nodeHost}
	if nodeName != nil {
		node.NodeName = *nodeName
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create draws the next sequence value and fills node.NodeID.
		if err := tx.Create(node).Error; err != nil {
			return fmt.Errorf("failed to insert archiver: %w", err)
		}

		// Default the name from the assigned id, never a predicted one.
		// Still inside the transaction: the row becomes visible to other
		// callers fully formed or not at all.
		if nodeName == nil {
			name := models.DefaultArchiverName(node.NodeID)
			if err := tx.Model(node).Update("node_name", name).Error; err != nil {
				return fmt.Errorf("failed to set default archiver name: %w", err)
			}
			node.NodeName = name
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return node.NodeID, nil
}

// RemoveArchiver deletes an archiver node by id.
//
// Deleting an id that does not exist returns models.ErrArchiverNotFound.
// The id sequence is never rewound; removed ids are not reused.
func (s *GORMStore) RemoveArchiver(ctx context.Context, nodeID int64) (err error) {
	defer func() { s.recordOp("remove", err) }()

	return deleteByField[models.ArchiverNode](s.db, ctx, "node_id", nodeID, models.ErrArchiverNotFound)
}

// ListArchivers returns all registered archiver nodes ordered by id.
func (s *GORMStore) ListArchivers(ctx context.Context) (nodes []*models.ArchiverNode, err error) {
	defer func() { s.recordOp("list", err) }()

	return listAll[models.ArchiverNode](s.db, ctx, "node_id")
}
