package database

import (
	"fmt"

	"github.com/metaphorce/taskflow/internal/models"
)

// Migrate brings the schema up to date for every entity. Secondary indexes
// on weak-reference columns come from the model tags. No foreign-key
// constraints are created: cross-entity references are opaque ids and
// deletes never cascade.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.TimeLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
