package models

import "time"

// DefaultMonthlyBudget is the ceiling reported for a month with no
// stored budget row. The currency unit is opaque to the system.
const DefaultMonthlyBudget float64 = 1_000_000

// MonthFormat is the layout for month identifiers ("2024-01").
const MonthFormat = "2006-01"

// MonthlyBudget holds the spending ceiling for one calendar month.
// At most one row exists per month; setting a budget replaces any
// prior row for that month.
type MonthlyBudget struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Month       string    `gorm:"not null;index" json:"month"`
	TotalBudget float64   `gorm:"not null" json:"total_budget"`
	CreatedDate time.Time `gorm:"not null" json:"created_date"`
}

// TableName overrides the default GORM table name.
func (MonthlyBudget) TableName() string { return "monthly_budget" }
