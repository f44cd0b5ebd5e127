package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Abh004/electronics-retail-dbms/internal/httpx"
	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"github.com/Abh004/electronics-retail-dbms/internal/services"
	"github.com/Abh004/electronics-retail-dbms/internal/validation"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB  *gorm.DB
	Svc *services.OrderService
}

func NewOrderHandler(conn *gorm.DB, svc *services.OrderService) *OrderHandler {
	return &OrderHandler{DB: conn, Svc: svc}
}

type cartItemInput struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type orderInput struct {
	CustomerID uint            `json:"customerId"`
	CartItems  []cartItemInput `json:"cartItems"`
}

func (in *orderInput) validate() validation.Violations {
	v := validation.Violations{}
	if in.CustomerID == 0 {
		v["customerId"] = "required"
	}
	// An empty cart would silently produce a zero-total order; reject it here.
	if len(in.CartItems) == 0 {
		v["cartItems"] = "must_not_be_empty"
	}
	for i, item := range in.CartItems {
		if item.ProductID == 0 {
			v[fmt.Sprintf("cartItems[%d].productId", i)] = "required"
		}
		validation.PositiveInt(fmt.Sprintf("cartItems[%d].quantity", i), item.Quantity, v)
	}
	return v
}

// orderSummary is an order row joined with its customer, as the back office
// lists it.
type orderSummary struct {
	OrderID       uint      `json:"orderId"`
	OrderDate     time.Time `json:"orderDate"`
	TotalAmount   float64   `json:"totalAmount"`
	CustomerID    *uint     `json:"customerId"`
	CustomerName  *string   `json:"customerName"`
	CustomerEmail *string   `json:"customerEmail"`
}

func toOrderSummary(o models.Order) orderSummary {
	out := orderSummary{
		OrderID:     o.ID,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		CustomerID:  o.CustomerID,
	}
	if o.Customer != nil {
		name := o.Customer.FirstName + " " + o.Customer.LastName
		out.CustomerName = &name
		out.CustomerEmail = &o.Customer.Email
	}
	return out
}

type orderDetailView struct {
	OrderDetailID uint    `json:"orderDetailId"`
	ProductID     uint    `json:"productId"`
	ProductName   *string `json:"productName"`
	Quantity      int     `json:"quantity"`
	PricePerUnit  float64 `json:"pricePerUnit"`
}

type orderView struct {
	orderSummary
	OrderDetails []orderDetailView `json:"orderDetails"`
	Payments     []models.Payment  `json:"payments"`
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var orders []models.Order
	if err := h.DB.Preload("Customer").Order("id").Find(&orders).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	out := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderSummary(o))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var order models.Order
	err := h.DB.Preload("Customer").Preload("Details.Product").Preload("Payments").
		First(&order, id).Error
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Order not found", nil)
		return
	}

	view := orderView{
		orderSummary: toOrderSummary(order),
		OrderDetails: make([]orderDetailView, 0, len(order.Details)),
		Payments:     order.Payments,
	}
	if view.Payments == nil {
		view.Payments = []models.Payment{}
	}
	for _, d := range order.Details {
		dv := orderDetailView{
			OrderDetailID: d.ID,
			ProductID:     d.ProductID,
			Quantity:      d.Quantity,
			PricePerUnit:  d.PricePerUnit,
		}
		if d.Product != nil {
			dv.ProductName = &d.Product.Name
		}
		view.OrderDetails = append(view.OrderDetails, dv)
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Create runs the order fulfillment transaction for the submitted cart.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input orderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	items := make([]services.CartItem, 0, len(input.CartItems))
	for _, item := range input.CartItems {
		items = append(items, services.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := h.Svc.Fulfill(input.CustomerID, items)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"orderId": order.ID})
}

type paymentInput struct {
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
	Status      string  `json:"status"`
}

func (in *paymentInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.PositiveFloat("amount", in.Amount, v)
	return v
}

// CreatePayment applies a payment against the order's remaining balance.
func (h *OrderHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var input paymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	payment, err := h.Svc.ApplyPayment(id, input.Amount, input.PaymentMode, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			httpx.JSONError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, payment)
}

// CustomerSpent reports the total amount spent by a customer across orders.
func (h *OrderHandler) CustomerSpent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	total, err := h.Svc.CustomerTotalSpent(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"totalSpent": total})
}

// OrderBalance reports the outstanding balance of an order.
func (h *OrderHandler) OrderBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	balance, err := h.Svc.OrderBalance(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"balance": balance})
}
