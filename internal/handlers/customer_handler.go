package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/customers"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service *customers.Service
}

func NewCustomerHandler(s *customers.Service) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// List serves the invoice-form dropdown: every customer id and name.
func (h *CustomerHandler) List(c *gin.Context) {
	fields, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch all customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": fields})
}

// Table serves the customers page with per-customer invoice totals.
func (h *CustomerHandler) Table(c *gin.Context) {
	rows, err := h.service.Table(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": rows})
}
