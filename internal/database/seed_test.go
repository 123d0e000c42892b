package database

import (
	"testing"

	"fintracker/internal/models"
	"fintracker/internal/testutil"
)

func TestSeedDefaultCategories(t *testing.T) {
	t.Run("seeds_empty_table", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.AssertNoError(t, SeedDefaultCategories(db))

		var count int64
		if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count categories: %v", err)
		}
		if count != int64(len(models.DefaultCategories)) {
			t.Errorf("expected %d seeded categories, got %d", len(models.DefaultCategories), count)
		}

		var income, expense int64
		if err := db.Model(&models.Category{}).Where("type = ?", models.CategoryTypeIncome).Count(&income).Error; err != nil {
			t.Fatalf("failed to count income categories: %v", err)
		}
		if err := db.Model(&models.Category{}).Where("type = ?", models.CategoryTypeExpense).Count(&expense).Error; err != nil {
			t.Fatalf("failed to count expense categories: %v", err)
		}
		if income != 4 || expense != 12 {
			t.Errorf("expected 4 income and 12 expense categories, got %d and %d", income, expense)
		}
	})

	t.Run("rerun_is_a_no_op", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.AssertNoError(t, SeedDefaultCategories(db))
		testutil.AssertNoError(t, SeedDefaultCategories(db))

		var count int64
		if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count categories: %v", err)
		}
		if count != int64(len(models.DefaultCategories)) {
			t.Errorf("expected %d categories after rerun, got %d", len(models.DefaultCategories), count)
		}
	})

	t.Run("populated_table_is_left_alone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.CreateTestCategoryWithName(t, db, models.CategoryTypeExpense, "Custom Only")

		testutil.AssertNoError(t, SeedDefaultCategories(db))

		var count int64
		if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count categories: %v", err)
		}
		if count != 1 {
			t.Errorf("expected the single existing category to survive untouched, got %d rows", count)
		}
	})
}
