package services

import (
	"gorm.io/gorm"

	apperrors "fintracker/internal/errors"
	"fintracker/internal/models"
)

// transactionService handles ledger business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions returns every ledger entry. No ordering is applied;
// callers sort client-side if they need chronological order.
func (s *transactionService) ListTransactions() ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := s.db.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// AddTransaction appends one entry and returns it with the assigned ID.
// Values are stored as given: type and category are not checked against
// the category store, and amount and date are not sanity-checked.
func (s *transactionService) AddTransaction(date, transactionType, category string, amount float64, notes *string) (*models.Transaction, error) {
	transaction := &models.Transaction{
		Date:     date,
		Type:     transactionType,
		Category: category,
		Amount:   amount,
		Notes:    notes,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction removes the entry with the given ID if present.
// Deleting a missing ID is a success; the operation is idempotent.
func (s *transactionService) DeleteTransaction(transactionID uint) error {
	if err := s.db.Delete(&models.Transaction{}, transactionID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteAllTransactions removes every ledger entry. Irreversible.
func (s *transactionService) DeleteAllTransactions() error {
	err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Transaction{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
