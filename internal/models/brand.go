package models

// Brand groups products under a manufacturer name.
type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"brandId"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	// Discounts is a percentage (0-100) applied storewide for the brand.
	Discounts float64 `gorm:"not null;default:0" json:"discounts"`
}
