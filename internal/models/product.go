package models

// Product is a catalog item. Stock is decremented by order fulfillment;
// Price is the live catalog price, snapshotted onto order details at sale time.
type Product struct {
	ID      uint    `gorm:"primaryKey" json:"productId"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Price   float64 `gorm:"not null" json:"price"`
	Stock   int     `gorm:"not null" json:"stock"`
	BrandID *uint   `gorm:"index" json:"brandId"`
	Brand   *Brand  `gorm:"foreignKey:BrandID" json:"-"`
}
