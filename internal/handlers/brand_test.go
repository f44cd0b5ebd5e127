package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abh004/electronics-retail-dbms/internal/models"
)

func TestBrandCRUD(t *testing.T) {
	conn := setupTestDB(t)
	h := NewBrandHandler(conn)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/api/brands", map[string]any{
		"name":      "JBL",
		"discounts": 5.00,
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Brand
	decodeBody(t, rec, &created)
	if created.ID == 0 || created.Name != "JBL" {
		t.Fatalf("unexpected created brand: %+v", created)
	}

	rec = httptest.NewRecorder()
	h.List(rec, jsonRequest(t, http.MethodGet, "/api/brands", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", rec.Code)
	}
	var listed []models.Brand
	decodeBody(t, rec, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 brand got %d", len(listed))
	}

	rec = httptest.NewRecorder()
	h.Update(rec, withID(jsonRequest(t, http.MethodPut, "/api/brands/1", map[string]any{
		"name":      "JBL Audio",
		"discounts": 7.50,
	}), "1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.Get(rec, withID(jsonRequest(t, http.MethodGet, "/api/brands/1", nil), "1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", rec.Code)
	}
	var fetched models.Brand
	decodeBody(t, rec, &fetched)
	if fetched.Name != "JBL Audio" || fetched.Discounts != 7.50 {
		t.Fatalf("update not applied: %+v", fetched)
	}

	rec = httptest.NewRecorder()
	h.Delete(rec, withID(jsonRequest(t, http.MethodDelete, "/api/brands/1", nil), "1"))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204 got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Get(rec, withID(jsonRequest(t, http.MethodGet, "/api/brands/1", nil), "1"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404 got %d", rec.Code)
	}
}

func TestBrandCreateValidation(t *testing.T) {
	conn := setupTestDB(t)
	h := NewBrandHandler(conn)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/api/brands", map[string]any{
		"discounts": 120.0,
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	decodeBody(t, rec, &resp)
	if resp.Error != "validation failed" {
		t.Fatalf("unexpected error message %q", resp.Error)
	}
	if resp.Details["name"] == "" || resp.Details["discounts"] == "" {
		t.Fatalf("expected name and discounts violations, got %v", resp.Details)
	}
}

func TestBrandGetInvalidID(t *testing.T) {
	conn := setupTestDB(t)
	h := NewBrandHandler(conn)

	rec := httptest.NewRecorder()
	h.Get(rec, withID(jsonRequest(t, http.MethodGet, "/api/brands/abc", nil), "abc"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
