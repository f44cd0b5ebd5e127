package models

import "time"

// Employee entity
type Employee struct {
	ID          uint       `gorm:"primaryKey" json:"employeeId"`
	FirstName   string     `gorm:"size:50;not null" json:"firstName"`
	LastName    string     `gorm:"size:50;not null" json:"lastName"`
	Designation string     `gorm:"size:100" json:"designation"`
	HireDate    *time.Time `json:"hireDate"`
}
