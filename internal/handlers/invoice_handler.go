package handler

import (
	"errors"
	"net/http"
	"strconv"

	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	service *invoices.Service
}

func NewInvoiceHandler(s *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// invoiceForm pulls the raw mutation fields out of the submitted form.
// Values stay strings; the validator owns coercion.
func invoiceForm(c *gin.Context) map[string]string {
	return map[string]string{
		"customerId": c.PostForm("customerId"),
		"amount":     c.PostForm("amount"),
		"status":     c.PostForm("status"),
	}
}

// respondState interprets a mutation State: a Redirect outcome becomes
// an HTTP redirect, field errors come back 400, persistence faults 500.
func respondState(c *gin.Context, state invoices.State) {
	switch {
	case state.Redirect != "":
		c.Redirect(http.StatusSeeOther, state.Redirect)
	case len(state.Errors) > 0:
		c.JSON(http.StatusBadRequest, state)
	case state.Message != "":
		c.JSON(http.StatusInternalServerError, state)
	default:
		c.JSON(http.StatusOK, state)
	}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	respondState(c, h.service.Create(invoiceForm(c)))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	respondState(c, h.service.Update(id, invoiceForm(c)))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	respondState(c, h.service.Delete(id))
}

func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}

	rows, err := h.service.ListFiltered(query, page)
	if errors.Is(err, invoices.ErrInvalidPage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": rows})
}

func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.service.CountPages(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch total number of invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	form, err := h.service.GetByID(id)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": form})
}

func (h *InvoiceHandler) Latest(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	latest, err := h.service.Latest(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch the latest invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": latest})
}

func (h *InvoiceHandler) Summary(c *gin.Context) {
	summary, err := h.service.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch card data"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *InvoiceHandler) Revenue(c *gin.Context) {
	revenue, err := h.service.Revenue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch revenue data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}
