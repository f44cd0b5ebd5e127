package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Abh004/electronics-retail-dbms/internal/httpx"
	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"github.com/Abh004/electronics-retail-dbms/internal/validation"
	"gorm.io/gorm"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

func NewEmployeeHandler(conn *gorm.DB) *EmployeeHandler { return &EmployeeHandler{DB: conn} }

type employeeInput struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Designation string     `json:"designation"`
	HireDate    *time.Time `json:"hireDate"`
}

func (in *employeeInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("firstName", in.FirstName, v)
	validation.Required("lastName", in.LastName, v)
	return v
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	var employees []models.Employee
	if err := h.DB.Order("id").Find(&employees).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var employee models.Employee
	if err := h.DB.First(&employee, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input employeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	employee := models.Employee{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Designation: input.Designation,
		HireDate:    input.HireDate,
	}
	if err := h.DB.Create(&employee).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var employee models.Employee
	if err := h.DB.First(&employee, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	var input employeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Designation = input.Designation
	employee.HireDate = input.HireDate
	if err := h.DB.Save(&employee).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.DB.Delete(&models.Employee{}, id).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.NoContent(w)
}
