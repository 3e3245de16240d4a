package model

import "time"

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "Cash"
	PaymentEasyPaisa PaymentMethod = "EasyPaisa"
	PaymentJazzCash  PaymentMethod = "JazzCash"
	PaymentBank      PaymentMethod = "Bank"
	PaymentUnpaid    PaymentMethod = "Unpaid"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentEasyPaisa, PaymentJazzCash, PaymentBank, PaymentUnpaid:
		return true
	}
	return false
}

type ExpenseCategory struct {
	BaseModel
	UserID string `db:"user_id" json:"user_id"`
	Name   string `db:"name" json:"name"`
	Color  string `db:"color" json:"color"`
}

type Expense struct {
	BaseModel
	UserID        string        `db:"user_id" json:"user_id"`
	CategoryID    *string       `db:"category_id" json:"category_id"`       // Nullable
	SubcategoryID *string       `db:"subcategory_id" json:"subcategory_id"` // Nullable
	Amount        float64       `db:"amount" json:"amount"`
	TaxRate       float64       `db:"tax_rate" json:"tax_rate"`
	TaxAmount     float64       `db:"tax_amount" json:"tax_amount"`     // Computed at write time
	TotalAmount   float64       `db:"total_amount" json:"total_amount"` // Computed at write time
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
	ExpenseDate   time.Time     `db:"expense_date" json:"expense_date"`
	ExpenseTime   *string       `db:"expense_time" json:"expense_time"`
	Description   *string       `db:"description" json:"description"`

	// Joined for display/analytics, not columns of the expenses table.
	CategoryName  *string `db:"category_name" json:"category_name,omitempty"`
	CategoryColor *string `db:"category_color" json:"category_color,omitempty"`
}
