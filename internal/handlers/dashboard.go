package handlers

import (
	"fmt"
	"net/http"

	"github.com/Abh004/electronics-retail-dbms/internal/httpx"
	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(conn *gorm.DB) *DashboardHandler { return &DashboardHandler{DB: conn} }

type dashboardStats struct {
	TotalProducts  int64  `json:"totalProducts"`
	TotalCustomers int64  `json:"totalCustomers"`
	TotalOrders    int64  `json:"totalOrders"`
	TotalRevenue   string `json:"totalRevenue"`
}

// Stats returns the aggregate counters shown on the back-office dashboard.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var stats dashboardStats
	if err := h.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if err := h.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if err := h.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	var revenue float64
	if err := h.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	stats.TotalRevenue = fmt.Sprintf("%.2f", revenue)
	httpx.JSON(w, http.StatusOK, stats)
}
