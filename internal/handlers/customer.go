package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abh004/electronics-retail-dbms/internal/httpx"
	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"github.com/Abh004/electronics-retail-dbms/internal/validation"
	"gorm.io/gorm"
)

type CustomerHandler struct {
	DB *gorm.DB
}

func NewCustomerHandler(conn *gorm.DB) *CustomerHandler { return &CustomerHandler{DB: conn} }

type customerInput struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

func (in *customerInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("firstName", in.FirstName, v)
	validation.Required("lastName", in.LastName, v)
	validation.Required("email", in.Email, v)
	return v
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	var customers []models.Customer
	if err := h.DB.Order("id").Find(&customers).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var customer models.Customer
	if err := h.DB.First(&customer, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input customerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	customer := models.Customer{
		FirstName:  input.FirstName,
		MiddleName: input.MiddleName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
	}
	if err := h.DB.Create(&customer).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var customer models.Customer
	if err := h.DB.First(&customer, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	var input customerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	customer.FirstName = input.FirstName
	customer.MiddleName = input.MiddleName
	customer.LastName = input.LastName
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	if err := h.DB.Save(&customer).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.DB.Delete(&models.Customer{}, id).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.NoContent(w)
}
