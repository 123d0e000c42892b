package database

import (
	"fmt"

	"fintracker/internal/logger"
	"fintracker/internal/models"

	"gorm.io/gorm"
)

// SeedDefaultCategories inserts the default category list if the
// categories table is empty. Running it against an already-populated
// table is a no-op, so bootstrap can call it unconditionally.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	// Copy so Create never writes generated IDs back into the package-level list.
	seed := make([]models.Category, len(models.DefaultCategories))
	copy(seed, models.DefaultCategories)

	if err := db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	logger.Get().Infof("Seeded %d default categories", len(seed))
	return nil
}

// Seed populates lookup data on the manager's database.
func (m *Manager) Seed() error {
	return SeedDefaultCategories(m.db)
}
