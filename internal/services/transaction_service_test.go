package services

import (
	"testing"

	"fintracker/internal/models"
	"fintracker/internal/testutil"
)

func TestAddTransaction(t *testing.T) {
	t.Run("assigns_id_and_stores_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		notes := "weekly shop"
		tx, err := svc.AddTransaction("2024-01-05", "Expense", "Groceries", 50000, &notes)
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Date != "2024-01-05" || tx.Type != "Expense" || tx.Category != "Groceries" || tx.Amount != 50000 {
			t.Errorf("stored fields do not match input: %+v", tx)
		}
		if tx.Notes == nil || *tx.Notes != "weekly shop" {
			t.Errorf("expected notes 'weekly shop', got %v", tx.Notes)
		}
	})

	t.Run("notes_optional", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.AddTransaction("2024-01-05", "Expense", "Groceries", 50000, nil)
		testutil.AssertNoError(t, err)

		var stored models.Transaction
		if err := db.First(&stored, tx.ID).Error; err != nil {
			t.Fatalf("failed to reload transaction: %v", err)
		}
		if stored.Notes != nil {
			t.Errorf("expected nil notes, got %v", *stored.Notes)
		}
	})

	t.Run("ledger_accepts_unknown_category_and_negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		// No category row exists; the ledger stores entries as given.
		tx, err := svc.AddTransaction("not-a-date", "Refund", "Never Created", -125.50, nil)
		testutil.AssertNoError(t, err)
		if tx.Amount != -125.50 {
			t.Errorf("expected amount -125.50, got %v", tx.Amount)
		}
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("returns_all_entries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestTransaction(t, db)
		testutil.CreateTestTransaction(t, db)

		transactions, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)

		if len(transactions) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(transactions))
		}
	})

	t.Run("empty_ledger_returns_empty_slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		transactions, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)

		if transactions == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(transactions) != 0 {
			t.Errorf("expected 0 transactions, got %d", len(transactions))
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("removes_matching_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx := testutil.CreateTestTransaction(t, db)
		keep := testutil.CreateTestTransaction(t, db)

		err := svc.DeleteTransaction(tx.ID)
		testutil.AssertNoError(t, err)

		var remaining []models.Transaction
		if err := db.Find(&remaining).Error; err != nil {
			t.Fatalf("failed to list transactions: %v", err)
		}
		if len(remaining) != 1 || remaining[0].ID != keep.ID {
			t.Errorf("expected only transaction %d to remain, got %+v", keep.ID, remaining)
		}
	})

	t.Run("missing_id_is_idempotent_success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestTransaction(t, db)

		err := svc.DeleteTransaction(99999)
		testutil.AssertNoError(t, err)

		// The ledger must be unchanged.
		var count int64
		if err := db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count transactions: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 transaction, got %d", count)
		}
	})
}

func TestDeleteAllTransactions(t *testing.T) {
	t.Run("clears_the_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestTransaction(t, db)
		testutil.CreateTestTransaction(t, db)
		testutil.CreateTestTransaction(t, db)

		err := svc.DeleteAllTransactions()
		testutil.AssertNoError(t, err)

		var count int64
		if err := db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count transactions: %v", err)
		}
		if count != 0 {
			t.Errorf("expected empty ledger, got %d rows", count)
		}
	})

	t.Run("empty_ledger_still_succeeds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.AssertNoError(t, svc.DeleteAllTransactions())
	})
}
