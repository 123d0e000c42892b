package services

import "fintracker/internal/models"

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories() (map[models.CategoryType][]string, error)
	AddCategory(categoryType models.CategoryType, name string) (*models.Category, error)
	RemoveCategory(categoryType models.CategoryType, name string) error
}

// TransactionServicer defines the contract for ledger business logic.
type TransactionServicer interface {
	ListTransactions() ([]models.Transaction, error)
	AddTransaction(date, transactionType, category string, amount float64, notes *string) (*models.Transaction, error)
	DeleteTransaction(transactionID uint) error
	DeleteAllTransactions() error
}

// BudgetServicer defines the contract for monthly budget business logic.
type BudgetServicer interface {
	GetBudget() (float64, error)
	SetBudget(totalBudget float64) (*models.MonthlyBudget, error)
	ResetMonthly() error
}
