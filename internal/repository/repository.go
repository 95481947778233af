// internal/repository/repository.go
package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// inTransaction runs fn inside one database transaction. Every
// multi-row write in this package goes through it, so a mid-batch
// failure rolls back and leaves no partial state observable.
func inTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		slog.WarnContext(ctx, "transaction rolled back", "error", err)
	}
	return err
}
