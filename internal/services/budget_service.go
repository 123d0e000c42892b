package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintracker/internal/errors"
	"fintracker/internal/models"
)

// budgetService handles monthly budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// currentMonth derives the month identifier from wall-clock time in the
// server's local time zone.
func currentMonth() string {
	return time.Now().Format(models.MonthFormat)
}

// GetBudget returns the stored ceiling for the current month. A month
// with no stored row reports the default ceiling; that is the business
// rule for an unset budget, not an error fallback.
func (s *budgetService) GetBudget() (float64, error) {
	var budget models.MonthlyBudget
	err := s.db.Where("month = ?", currentMonth()).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultMonthlyBudget, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget.TotalBudget, nil
}

// SetBudget replaces the current month's ceiling. The delete and insert
// run in one transaction so concurrent sets for the same month can never
// leave two rows, and a crash can never leave the month half-written.
func (s *budgetService) SetBudget(totalBudget float64) (*models.MonthlyBudget, error) {
	budget := &models.MonthlyBudget{
		Month:       currentMonth(),
		TotalBudget: totalBudget,
		CreatedDate: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("month = ?", budget.Month).Delete(&models.MonthlyBudget{}).Error; err != nil {
			return err
		}
		return tx.Create(budget).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// ResetMonthly is reserved for a future reset workflow. It mutates no
// state and always succeeds.
func (s *budgetService) ResetMonthly() error {
	return nil
}
