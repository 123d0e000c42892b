package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintracker/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category of the given type with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, categoryType, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given type and name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, categoryType models.CategoryType, name string) *models.Category {
	t.Helper()

	category := &models.Category{Type: categoryType, Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates an expense transaction with fixed fields.
func CreateTestTransaction(t *testing.T, db *gorm.DB) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Date:     "2024-01-05",
		Type:     string(models.CategoryTypeExpense),
		Category: "Groceries",
		Amount:   50000,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestMonthlyBudget creates a budget row for the given month.
func CreateTestMonthlyBudget(t *testing.T, db *gorm.DB, month string, totalBudget float64) *models.MonthlyBudget {
	t.Helper()

	budget := &models.MonthlyBudget{
		Month:       month,
		TotalBudget: totalBudget,
		CreatedDate: time.Now(),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test monthly budget: %v", err)
	}
	return budget
}
