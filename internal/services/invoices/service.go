// Package invoices is the validated mutation pipeline and query service
// for invoice records: parse -> validate -> persist -> invalidate ->
// redirect, with storage faults converted to generic messages at the
// boundary.
package invoices

import (
	"encoding/json"
	"time"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ItemsPerPage is the fixed listing page size.
const ItemsPerPage = 6

// InvoiceStore is the persistence collaborator for invoice records.
type InvoiceStore interface {
	Create(inv *models.Invoice) error
	Update(inv *models.Invoice) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	Search(query string, limit, offset int) ([]repository.InvoiceRow, error)
	CountFiltered(query string) (int64, error)
	Count() (int64, error)
	TotalsByStatus() (map[string]int64, error)
	Latest(n int) ([]repository.InvoiceRow, error)
	RecordAudit(entry *models.MutationAuditLog) error
}

// CustomerCounter supplies the customer count for the summary cards.
type CustomerCounter interface {
	Count() (int64, error)
}

// RevenueStore supplies the chart data.
type RevenueStore interface {
	All() ([]models.Revenue, error)
}

// ViewCache holds rendered view payloads; Invalidate marks a named
// view (and its variants) stale.
type ViewCache interface {
	Put(view string, v any)
	Get(view string) (any, bool)
	Invalidate(view string)
}

type Service struct {
	store     InvoiceStore
	customers CustomerCounter
	revenue   RevenueStore
	cache     ViewCache
	now       func() time.Time
}

func NewService(store InvoiceStore, customers CustomerCounter, revenue RevenueStore, views ViewCache) *Service {
	return &Service{
		store:     store,
		customers: customers,
		revenue:   revenue,
		cache:     views,
		now:       time.Now,
	}
}

func toCents(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

// Create validates the submitted form and inserts a new invoice. On
// success the listing view is invalidated before the redirect is
// signalled; persistence faults come back as a generic message, never
// as a raw storage error.
func (s *Service) Create(form map[string]string) State {
	input, fieldErrs := validation.ParseInvoiceForm(form, validation.OpCreate)
	if fieldErrs != nil {
		return State{Errors: fieldErrs.Errors, Message: fieldErrs.Message}
	}

	inv := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: input.CustomerID,
		Amount:     toCents(input.Amount),
		Status:     input.Status,
		Date:       s.now(),
		CreatedAt:  s.now(),
	}

	if err := s.store.Create(inv); err != nil {
		log.Error().Err(err).Str("customer_id", inv.CustomerID.String()).Msg("create invoice")
		return State{Message: "Database Error: Failed to Create Invoice."}
	}

	s.audit(inv, "created")
	s.cache.Invalidate(cache.ViewInvoices)
	return State{Redirect: cache.ViewInvoices}
}

// Update revalidates the form and reassigns customer, amount, status
// and date on the invoice with the given id. An absent id is a
// persistence error, not a validation error.
func (s *Service) Update(id uuid.UUID, form map[string]string) State {
	input, fieldErrs := validation.ParseInvoiceForm(form, validation.OpUpdate)
	if fieldErrs != nil {
		return State{Errors: fieldErrs.Errors, Message: fieldErrs.Message}
	}

	inv := &models.Invoice{
		ID:         id,
		CustomerID: input.CustomerID,
		Amount:     toCents(input.Amount),
		Status:     input.Status,
		Date:       s.now(),
	}

	if err := s.store.Update(inv); err != nil {
		log.Error().Err(err).Str("invoice_id", id.String()).Msg("update invoice")
		return State{Message: "Database Error: Failed to Update Invoice."}
	}

	s.audit(inv, "updated")
	s.cache.Invalidate(cache.ViewInvoices)
	return State{Redirect: cache.ViewInvoices}
}

// Delete removes the invoice with the given id. The listing view is
// invalidated whether or not the delete succeeds, and neither outcome
// redirects: deletion re-renders the list in place. A repeated delete
// of an absent id comes back as a persistence-error State, never as a
// fault raised past this boundary.
func (s *Service) Delete(id uuid.UUID) State {
	if err := s.store.Delete(id); err != nil {
		log.Error().Err(err).Str("invoice_id", id.String()).Msg("delete invoice")
		s.cache.Invalidate(cache.ViewInvoices)
		return State{Message: "Database Error: Failed to Delete Invoice."}
	}

	s.audit(&models.Invoice{ID: id}, "deleted")
	s.cache.Invalidate(cache.ViewInvoices)
	return State{}
}

// audit is best-effort: a failed audit write is logged and the mutation
// outcome stands.
func (s *Service) audit(inv *models.Invoice, action string) {
	details, err := json.Marshal(map[string]interface{}{
		"customer_id": inv.CustomerID,
		"amount":      inv.Amount,
		"status":      inv.Status,
	})
	if err != nil {
		return
	}

	entry := &models.MutationAuditLog{
		ID:        uuid.New(),
		InvoiceID: inv.ID,
		Action:    action,
		Details:   details,
		CreatedAt: s.now(),
	}
	if err := s.store.RecordAudit(entry); err != nil {
		log.Warn().Err(err).Str("invoice_id", inv.ID.String()).Msg("record mutation audit")
	}
}
