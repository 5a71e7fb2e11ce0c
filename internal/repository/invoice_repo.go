package repository

import (
	"errors"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceRow is one listing row: an invoice joined with its customer.
type InvoiceRow struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// Create inserts a new invoice inside a transaction so a storage fault
// (missing customer, connectivity) never leaves a partial record.
func (r *InvoiceRepository) Create(inv *models.Invoice) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Customer{}).Where("id = ?", inv.CustomerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrForeignKeyViolated
		}
		return tx.Create(inv).Error
	})
}

// Update reassigns customer, amount, status and date on an existing
// invoice. An absent id is ErrInvoiceNotFound, not a silent no-op.
func (r *InvoiceRepository) Update(inv *models.Invoice) error {
	result := r.db.Model(&models.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"customer_id": inv.CustomerID,
			"amount":      inv.Amount,
			"status":      inv.Status,
			"date":        inv.Date,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// Delete removes an invoice by id.
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) filtered(query string) *gorm.DB {
	like := "%" + query + "%"
	return r.db.Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where(
			"customers.name ILIKE ? OR customers.email ILIKE ? OR CAST(invoices.amount AS TEXT) LIKE ? OR CAST(invoices.date AS TEXT) LIKE ? OR invoices.status ILIKE ?",
			like, like, like, like, like,
		)
}

// Search returns one page of listing rows matching the free-form query,
// newest first. Date ties break on id so pages are stable.
func (r *InvoiceRepository) Search(query string, limit, offset int) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := r.filtered(query).
		Select("invoices.id, invoices.amount, invoices.date, invoices.status, customers.name, customers.email, customers.image_url").
		Order("invoices.date DESC, invoices.id ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

// CountFiltered counts rows matching the same predicate as Search.
func (r *InvoiceRepository) CountFiltered(query string) (int64, error) {
	var count int64
	err := r.filtered(query).Count(&count).Error
	return count, err
}

// Count returns the total invoice count over the whole table.
func (r *InvoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

type statusTotal struct {
	Status string
	Total  int64
}

// TotalsByStatus sums amounts grouped by status over the whole table.
func (r *InvoiceRepository) TotalsByStatus() (map[string]int64, error) {
	var rows []statusTotal
	err := r.db.Model(&models.Invoice{}).
		Select("status, COALESCE(SUM(amount),0) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}
	return totals, nil
}

// Latest returns the n most recently dated invoices with their customer.
func (r *InvoiceRepository) Latest(n int) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := r.db.Model(&models.Invoice{}).
		Select("invoices.id, invoices.amount, invoices.date, invoices.status, customers.name, customers.email, customers.image_url").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC, invoices.id ASC").
		Limit(n).
		Scan(&rows).Error
	return rows, err
}

// RecordAudit appends one mutation audit entry.
func (r *InvoiceRepository) RecordAudit(entry *models.MutationAuditLog) error {
	return r.db.Create(entry).Error
}
