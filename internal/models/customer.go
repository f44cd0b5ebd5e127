package models

// Customer entity
type Customer struct {
	ID         uint   `gorm:"primaryKey" json:"customerId"`
	FirstName  string `gorm:"size:50;not null" json:"firstName"`
	MiddleName string `gorm:"size:50" json:"middleName"`
	LastName   string `gorm:"size:50;not null" json:"lastName"`
	Email      string `gorm:"size:100;not null;unique" json:"email"`
	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
}
