package models

import "fmt"

// ArchiverNode represents an auxiliary archiver worker node tracked by the
// registry.
//
// Archiver nodes are identified by a numeric id drawn from the database's
// own auto-increment sequence, so uniqueness holds across every process
// that shares the same backing store. Name and host are immutable after
// creation; the registry exposes no update operation.
type ArchiverNode struct {
	NodeID   int64  `gorm:"primaryKey;autoIncrement;column:node_id" json:"node_id"`
	NodeName string `gorm:"not null;size:255;column:node_name" json:"node_name"`
	NodeHost string `gorm:"not null;size:255;column:node_host" json:"node_host"`
}

// TableName returns the table name for ArchiverNode.
func (ArchiverNode) TableName() string {
	return "archiver_nodes"
}

// DefaultArchiverName derives the default name for an archiver that was
// registered without one. The id must be the id actually assigned by the
// store, never a predicted value.
func DefaultArchiverName(nodeID int64) string {
	return fmt.Sprintf("archiver_%d", nodeID)
}

// Validate checks if the archiver node has valid configuration.
func (a *ArchiverNode) Validate() error {
	if a.NodeHost == "" {
		return ErrHostRequired
	}
	return nil
}
