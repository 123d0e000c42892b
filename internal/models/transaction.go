package models

// Transaction represents a single ledger entry.
//
// Category is carried as free text rather than a foreign key on
// purpose: entries must stay valid after their category is deleted, so
// the ledger is deliberately non-normalized. Date is likewise an
// uninterpreted string and Type is not checked against CategoryType;
// the store is a ledger, not a validator.
type Transaction struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Date     string  `gorm:"not null" json:"date"`
	Type     string  `gorm:"not null" json:"type"`
	Category string  `gorm:"not null" json:"category"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Notes    *string `json:"notes"`
}
