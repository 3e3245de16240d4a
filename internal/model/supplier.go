package model

type Supplier struct {
	BaseModel
	UserID        string  `db:"user_id" json:"user_id"`
	Name          string  `db:"name" json:"name"`
	ContactPerson *string `db:"contact_person" json:"contact_person"`
	Email         *string `db:"email" json:"email"`
	Phone         *string `db:"phone" json:"phone"`
	Address       *string `db:"address" json:"address"`
	Balance       float64 `db:"balance" json:"balance"`
	Rating        int     `db:"rating" json:"rating"` // 0..5
	IsActive      bool    `db:"is_active" json:"is_active"`
}
