package invoices

import (
	"errors"
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// ErrInvalidPage rejects page numbers below 1; pages are 1-indexed.
var ErrInvalidPage = errors.New("page number must be 1 or greater")

// Summary is the dashboard card data, aggregated over the whole table.
// Totals are pre-formatted for display.
type Summary struct {
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// LatestInvoice is one row of the recent-invoices card, amount
// pre-formatted.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
	Date     time.Time `json:"date"`
}

// InvoiceForm is the edit-form shape of a stored invoice: amount is
// scaled back to major units so the round trip through the form is
// exact.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// ListFiltered returns one page of listing rows matching the free-form
// query, newest first. Pages are served from the view cache until a
// mutation invalidates the listing.
func (s *Service) ListFiltered(query string, page int) ([]repository.InvoiceRow, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	key := fmt.Sprintf("%s?query=%s&page=%d", cache.ViewInvoices, query, page)
	if v, ok := s.cache.Get(key); ok {
		return v.([]repository.InvoiceRow), nil
	}

	offset := (page - 1) * ItemsPerPage
	rows, err := s.store.Search(query, ItemsPerPage, offset)
	if err != nil {
		return nil, err
	}
	s.cache.Put(key, rows)
	return rows, nil
}

// CountPages returns the number of listing pages for the query.
func (s *Service) CountPages(query string) (int, error) {
	count, err := s.store.CountFiltered(query)
	if err != nil {
		return 0, err
	}
	return int((count + ItemsPerPage - 1) / ItemsPerPage), nil
}

// GetSummary aggregates the card data over the full invoice and
// customer tables.
func (s *Service) GetSummary() (Summary, error) {
	invoiceCount, err := s.store.Count()
	if err != nil {
		return Summary{}, err
	}
	customerCount, err := s.customers.Count()
	if err != nil {
		return Summary{}, err
	}
	totals, err := s.store.TotalsByStatus()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    format.Currency(totals[models.InvoiceStatusPaid]),
		TotalPendingInvoices: format.Currency(totals[models.InvoiceStatusPending]),
	}, nil
}

// Latest returns the n most recently dated invoices with their
// customer's display fields.
func (s *Service) Latest(n int) ([]LatestInvoice, error) {
	rows, err := s.store.Latest(n)
	if err != nil {
		return nil, err
	}

	latest := make([]LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   format.Currency(row.Amount),
			Date:     row.Date,
		})
	}
	return latest, nil
}

// GetByID fetches a single invoice in edit-form shape.
func (s *Service) GetByID(id uuid.UUID) (InvoiceForm, error) {
	inv, err := s.store.GetByID(id)
	if err != nil {
		return InvoiceForm{}, err
	}
	return InvoiceForm{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     float64(inv.Amount) / 100,
		Status:     inv.Status,
	}, nil
}

// Revenue returns the monthly chart data.
func (s *Service) Revenue() ([]models.Revenue, error) {
	return s.revenue.All()
}
