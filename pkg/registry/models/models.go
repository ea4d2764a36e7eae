package models

// AllModels returns all GORM models for auto-migration.
func AllModels() []any {
	return []any{
		&ArchiverNode{},
	}
}
