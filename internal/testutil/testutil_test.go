package testutil_test

import (
	"testing"
	"time"

	"fintracker/internal/errors"
	"fintracker/internal/models"
	"fintracker/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"categories", "transactions", "monthly_budget", "budget_reset"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	if category.ID == 0 {
		t.Fatal("category should have a non-zero ID")
	}
	if category.Type != models.CategoryTypeExpense {
		t.Errorf("expected expense category, got %s", category.Type)
	}

	tx := testutil.CreateTestTransaction(t, db)
	if tx.Amount != 50000 {
		t.Errorf("expected amount 50000, got %v", tx.Amount)
	}

	budget := testutil.CreateTestMonthlyBudget(t, db, time.Now().Format(models.MonthFormat), 2000000)
	if budget.TotalBudget != 2000000 {
		t.Errorf("expected budget 2000000, got %v", budget.TotalBudget)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrCategoryNotFound, "custom message")
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
