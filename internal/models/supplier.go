package models

// Supplier entity
type Supplier struct {
	ID           uint   `gorm:"primaryKey" json:"supplierId"`
	Name         string `gorm:"size:100;not null" json:"name"`
	ContactEmail string `gorm:"size:100;unique" json:"contactEmail"`
	ContactPhone string `gorm:"size:20" json:"contactPhone"`
}

// ProductSupplier links a product to one of its suppliers.
type ProductSupplier struct {
	ProductID  uint `gorm:"primaryKey;autoIncrement:false" json:"productId"`
	SupplierID uint `gorm:"primaryKey;autoIncrement:false" json:"supplierId"`
}
