package dto

type SaveSupplierInput struct {
	ID            string  `json:"-"`
	UserID        string  `json:"-"`
	Name          string  `json:"name" binding:"required"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Balance       float64 `json:"balance"`
	Rating        int     `json:"rating"`
	IsActive      *bool   `json:"is_active"`
}
