package store

import (
	"context"

	"gorm.io/gorm"
)

// ============================================================================
// Generic GORM Helpers
// ============================================================================
//
// These helpers reduce repetitive CRUD boilerplate across store
// implementation files. They are unexported (package-internal) and operate
// on the raw *gorm.DB to avoid coupling to GORMStore. Each helper handles
// standard concerns like context propagation and not-found error conversion.

// listAll retrieves all records of type T ordered by the given column.
// Returns an empty slice (not nil) on success with no records.
//
// Example:
//
//	nodes, err := listAll[models.ArchiverNode](db, ctx, "node_id")
func listAll[T any](db *gorm.DB, ctx context.Context, orderBy string) ([]*T, error) {
	results := make([]*T, 0)
	if err := db.WithContext(ctx).Order(orderBy).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// deleteByField deletes records of type T matching field=value.
// Returns notFoundErr if no rows were affected.
//
// Example:
//
//	err := deleteByField[models.ArchiverNode](db, ctx, "node_id", 7, models.ErrArchiverNotFound)
func deleteByField[T any](db *gorm.DB, ctx context.Context, field string, value any, notFoundErr error) error {
	var zero T
	result := db.WithContext(ctx).Where(field+" = ?", value).Delete(&zero)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundErr
	}
	return nil
}
