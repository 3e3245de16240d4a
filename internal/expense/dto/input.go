package dto

type SaveExpenseInput struct {
	ID            string  `json:"-"`
	UserID        string  `json:"-"`
	CategoryID    *string `json:"category_id"`
	SubcategoryID *string `json:"subcategory_id"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TaxRate       float64 `json:"tax_rate" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	ExpenseDate   string  `json:"expense_date" binding:"required"` // YYYY-MM-DD
	ExpenseTime   *string `json:"expense_time"`
	Description   *string `json:"description"`
}

type CreateCategoryInput struct {
	UserID string `json:"-"`
	Name   string `json:"name" binding:"required"`
	Color  string `json:"color"`
}
