package db

import (
	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"gorm.io/gorm"
)

// Seed inserts the demo brand catalog. Idempotent: brands are looked up by
// name (unique) before insert, so re-running never duplicates.
func Seed(conn *gorm.DB) {
	brands := []models.Brand{
		{Name: "JBL", Discounts: 5.00},
		{Name: "HP", Discounts: 2.50},
		{Name: "Lenovo"},
		{Name: "Apple"},
		{Name: "Samsung"},
		{Name: "Sony"},
	}
	for _, b := range brands {
		var existing models.Brand
		if err := conn.Where("name = ?", b.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			conn.Create(&b)
		}
	}
}
