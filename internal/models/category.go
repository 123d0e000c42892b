package models

// CategoryType represents the type of category. The capitalized values
// are part of the wire format: clients send and receive them verbatim.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "Income"
	CategoryTypeExpense CategoryType = "Expense"
)

// Category represents a user-defined transaction category. The
// (type, category) pair is unique; rows are only ever created and
// deleted, never updated in place.
type Category struct {
	ID   uint         `gorm:"primaryKey" json:"-"`
	Type CategoryType `gorm:"not null;uniqueIndex:idx_categories_type_category" json:"type"`
	Name string       `gorm:"column:category;not null;uniqueIndex:idx_categories_type_category" json:"category"`
}

// TableName overrides the default GORM table name.
func (Category) TableName() string { return "categories" }

// DefaultCategories is the seed list inserted once, when the categories
// table is first created empty.
var DefaultCategories = []Category{
	{Type: CategoryTypeIncome, Name: "Salary"},
	{Type: CategoryTypeIncome, Name: "Gocar"},
	{Type: CategoryTypeIncome, Name: "Grabcar"},
	{Type: CategoryTypeIncome, Name: "Other Income"},
	{Type: CategoryTypeExpense, Name: "Car"},
	{Type: CategoryTypeExpense, Name: "Housing"},
	{Type: CategoryTypeExpense, Name: "Transportation"},
	{Type: CategoryTypeExpense, Name: "Electricity"},
	{Type: CategoryTypeExpense, Name: "Groceries"},
	{Type: CategoryTypeExpense, Name: "Food & Beverage"},
	{Type: CategoryTypeExpense, Name: "Digital Top-up"},
	{Type: CategoryTypeExpense, Name: "Charity"},
	{Type: CategoryTypeExpense, Name: "Personal Care"},
	{Type: CategoryTypeExpense, Name: "Entertainment"},
	{Type: CategoryTypeExpense, Name: "Education"},
	{Type: CategoryTypeExpense, Name: "Miscellaneous"},
}
