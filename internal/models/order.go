package models

import "time"

// Order is created once by fulfillment; TotalAmount is written once after all
// line items are recorded and is otherwise immutable.
type Order struct {
	ID          uint          `gorm:"primaryKey" json:"orderId"`
	OrderDate   time.Time     `gorm:"not null;autoCreateTime" json:"orderDate"`
	TotalAmount float64       `gorm:"not null;default:0" json:"totalAmount"`
	CustomerID  *uint         `gorm:"index" json:"customerId"`
	Customer    *Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	Details     []OrderDetail `gorm:"foreignKey:OrderID" json:"-"`
	Payments    []Payment     `gorm:"foreignKey:OrderID" json:"-"`
}

// OrderDetail is a line item. PricePerUnit is the product price captured at
// sale time, immune to later catalog price changes.
type OrderDetail struct {
	ID           uint     `gorm:"primaryKey" json:"orderDetailId"`
	OrderID      uint     `gorm:"not null;index" json:"orderId"`
	ProductID    uint     `gorm:"not null;index" json:"productId"`
	Quantity     int      `gorm:"not null" json:"quantity"`
	PricePerUnit float64  `gorm:"not null" json:"pricePerUnit"`
	Product      *Product `gorm:"foreignKey:ProductID" json:"-"`
}
