// Package customers serves the read-only customer views: the invoice
// form dropdown and the customers table with per-customer totals.
package customers

import (
	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// Store is the persistence collaborator for customer reads.
type Store interface {
	List() ([]repository.CustomerField, error)
	Table(query string) ([]repository.CustomerTableRow, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// TableRow is one customers-table row with totals pre-formatted.
type TableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// List returns every customer id+name for the invoice form dropdown.
func (s *Service) List() ([]repository.CustomerField, error) {
	return s.store.List()
}

// Table returns customers matching the query with formatted invoice
// totals.
func (s *Service) Table(query string) ([]TableRow, error) {
	rows, err := s.store.Table(query)
	if err != nil {
		return nil, err
	}

	out := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, TableRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  format.Currency(row.TotalPending),
			TotalPaid:     format.Currency(row.TotalPaid),
		})
	}
	return out, nil
}
