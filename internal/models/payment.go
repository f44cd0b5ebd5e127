package models

import "time"

// Payment applied against an order's balance. The invariant enforced by the
// service layer: the sum of payment amounts never exceeds the order total.
type Payment struct {
	ID               uint      `gorm:"primaryKey" json:"transactionId"`
	OrderID          uint      `gorm:"not null;index" json:"orderId"`
	Amount           float64   `gorm:"not null" json:"amount"`
	PaymentMode      string    `gorm:"size:50" json:"paymentMode"` // ex: cash, card, upi
	Status           string    `gorm:"size:50" json:"status"`      // ex: pending, completed, failed
	PaymentTimestamp time.Time `gorm:"not null;autoCreateTime" json:"paymentTimestamp"`
}
