package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOrderNotFound = errors.New("order not found")

// CartItem is one requested line of an order.
type CartItem struct {
	ProductID uint
	Quantity  int
}

// OrderService owns the order fulfillment and payment transactions plus the
// derived read queries over orders and payments.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(conn *gorm.DB) *OrderService { return &OrderService{DB: conn} }

// Fulfill converts a cart into a persisted order inside a single transaction:
// per line it locks the product row, checks stock, decrements it, and records
// a detail row with the price snapshot; the accumulated total is written onto
// the order last. Any failed line rolls back the whole order.
func (s *OrderService) Fulfill(customerID uint, items []CartItem) (*models.Order, error) {
	var created models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("customer %d not found", customerID)
			}
			return fmt.Errorf("load customer: %w", err)
		}

		order := models.Order{CustomerID: &customerID}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		var total float64
		for _, item := range items {
			var product models.Product
			if err := lockForUpdate(tx).First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d does not exist", item.ProductID)
				}
				return fmt.Errorf("load product %d: %w", item.ProductID, err)
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("insufficient stock for product %s", product.Name)
			}

			if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
				Update("stock", product.Stock-item.Quantity).Error; err != nil {
				return fmt.Errorf("decrement stock for product %d: %w", product.ID, err)
			}

			detail := models.OrderDetail{
				OrderID:      order.ID,
				ProductID:    product.ID,
				Quantity:     item.Quantity,
				PricePerUnit: product.Price,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return fmt.Errorf("create order detail: %w", err)
			}

			total += product.Price * float64(item.Quantity)
		}

		total = roundCents(total)
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", total).Error; err != nil {
			return fmt.Errorf("update order total: %w", err)
		}
		order.TotalAmount = total
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ApplyPayment records a payment against an order after verifying it does not
// exceed the remaining balance. The amount is rounded to cent precision up
// front so the stored value matches what the balance guard compared. The order
// row is locked for the duration of the transaction so concurrent payments
// near the limit serialize instead of both slipping under it.
func (s *OrderService) ApplyPayment(orderID uint, amount float64, mode, status string) (*models.Payment, error) {
	amount = roundCents(amount)
	var created models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := lockForUpdate(tx).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("load order: %w", err)
		}

		paid, err := sumPayments(tx, orderID)
		if err != nil {
			return err
		}

		balance := roundCents(order.TotalAmount - paid)
		if amount > balance {
			return errors.New("payment exceeds remaining balance")
		}

		payment := models.Payment{
			OrderID:     orderID,
			Amount:      amount,
			PaymentMode: mode,
			Status:      status,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		created = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// CustomerTotalSpent sums the order totals of a customer, formatted to two
// decimal places ("0.00" when the customer has no orders).
func (s *OrderService) CustomerTotalSpent(customerID uint) (string, error) {
	var total float64
	err := s.DB.Model(&models.Order{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return "", fmt.Errorf("sum customer orders: %w", err)
	}
	return formatAmount(total), nil
}

// OrderBalance returns the outstanding balance of an order formatted to two
// decimal places, defaulting to "0.00" when the order does not exist.
func (s *OrderService) OrderBalance(orderID uint) (string, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "0.00", nil
		}
		return "", fmt.Errorf("load order: %w", err)
	}
	paid, err := sumPayments(s.DB, orderID)
	if err != nil {
		return "", err
	}
	return formatAmount(order.TotalAmount - paid), nil
}

func sumPayments(conn *gorm.DB, orderID uint) (float64, error) {
	var paid float64
	err := conn.Model(&models.Payment{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	return paid, nil
}

// lockForUpdate adds an exclusive row lock on Postgres. SQLite (used in tests)
// has no FOR UPDATE syntax; its writes are serialized by the database lock.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", roundCents(v))
}
