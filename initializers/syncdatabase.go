package initializers

import (
	"gorm.io/gorm"

	"github.com/pinkLiz/ReactServeBooks/internals/models"
)

// SyncDatabase synchronizes the libros table with the model, including the
// unique indexes on titulo and isbn.
func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(&models.Libro{})
}
