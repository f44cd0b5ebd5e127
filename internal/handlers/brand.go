package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abh004/electronics-retail-dbms/internal/httpx"
	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"github.com/Abh004/electronics-retail-dbms/internal/validation"
	"gorm.io/gorm"
)

type BrandHandler struct {
	DB *gorm.DB
}

func NewBrandHandler(conn *gorm.DB) *BrandHandler { return &BrandHandler{DB: conn} }

type brandInput struct {
	Name      string  `json:"name"`
	Discounts float64 `json:"discounts"`
}

func (in *brandInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.RangeFloat("discounts", in.Discounts, 0, 100, v)
	return v
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	var brands []models.Brand
	if err := h.DB.Order("id").Find(&brands).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, brands)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var brand models.Brand
	if err := h.DB.First(&brand, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Brand not found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input brandInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	brand := models.Brand{Name: input.Name, Discounts: input.Discounts}
	if err := h.DB.Create(&brand).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, brand)
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var brand models.Brand
	if err := h.DB.First(&brand, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Brand not found", nil)
		return
	}
	var input brandInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}
	brand.Name = input.Name
	brand.Discounts = input.Discounts
	if err := h.DB.Save(&brand).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.JSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.DB.Delete(&models.Brand{}, id).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httpx.NoContent(w)
}
