package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Abh004/electronics-retail-dbms/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T) http.Handler {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(conn, []string{"*"})
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200 got %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200 got %d", rec.Code)
	}
}

// TestOrderWorkflow walks the whole back-office flow through the router:
// catalog setup, order fulfillment, payment, and the derived reads.
func TestOrderWorkflow(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/brands", map[string]any{"name": "HP", "discounts": 2.50})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create brand: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var brand struct {
		ID uint `json:"brandId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&brand); err != nil {
		t.Fatalf("decode brand: %v", err)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/products", map[string]any{
		"name": "Laptop", "price": 10.00, "stock": 5, "brandId": brand.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var product struct {
		ID uint `json:"productId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/customers", map[string]any{
		"firstName": "Mira", "lastName": "Shah", "email": "mira@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var customer struct {
		ID uint `json:"customerId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&customer); err != nil {
		t.Fatalf("decode customer: %v", err)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/orders", map[string]any{
		"customerId": customer.ID,
		"cartItems":  []map[string]any{{"productId": product.ID, "quantity": 2}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var order struct {
		OrderID uint `json:"orderId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	orderPath := "/api/orders/" + strconv.Itoa(int(order.OrderID))

	rec = doJSON(t, h, http.MethodPost, orderPath+"/payments", map[string]any{
		"amount": 15.00, "paymentMode": "card", "status": "completed",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("payment: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/functions/order-balance/"+strconv.Itoa(int(order.OrderID)), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("balance: expected 200 got %d", rec.Code)
	}
	var bal struct {
		Balance string `json:"balance"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&bal); err != nil {
		t.Fatalf("decode balance: %v", err)
	}
	if bal.Balance != "5.00" {
		t.Fatalf("expected balance 5.00 got %s", bal.Balance)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/functions/customer-spent/"+strconv.Itoa(int(customer.ID)), nil)
	var spent struct {
		TotalSpent string `json:"totalSpent"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&spent); err != nil {
		t.Fatalf("decode spent: %v", err)
	}
	if spent.TotalSpent != "20.00" {
		t.Fatalf("expected totalSpent 20.00 got %s", spent.TotalSpent)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/dashboard/stats", nil)
	var stats struct {
		TotalOrders  int64  `json:"totalOrders"`
		TotalRevenue string `json:"totalRevenue"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalOrders != 1 || stats.TotalRevenue != "20.00" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestUnknownRoute(t *testing.T) {
	h := setupTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/nonsense", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
