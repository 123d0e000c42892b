package models

import "time"

// BudgetReset records a monthly reset with a snapshot of expenses at
// reset time. The table is reserved for a future reset workflow: it is
// created by the schema for compatibility, but no endpoint reads or
// writes it yet.
type BudgetReset struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Month            string    `gorm:"not null" json:"month"`
	ResetDate        time.Time `gorm:"not null" json:"reset_date"`
	BaselineExpenses string    `gorm:"not null" json:"baseline_expenses"`
}

// TableName overrides the default GORM table name.
func (BudgetReset) TableName() string { return "budget_reset" }
