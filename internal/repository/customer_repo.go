package repository

import (
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerField is the minimal shape the invoice form dropdown needs.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerTableRow is one row of the customers table with per-customer
// invoice aggregates. Totals are in minor units.
type CustomerTableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}

// List returns every customer id+name ordered by name.
func (r *CustomerRepository) List() ([]CustomerField, error) {
	var fields []CustomerField
	err := r.db.Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&fields).Error
	return fields, err
}

// Table returns customers matching the query by name or email, with
// their invoice count and pending/paid totals.
func (r *CustomerRepository) Table(query string) ([]CustomerTableRow, error) {
	like := "%" + query + "%"
	var rows []CustomerTableRow
	err := r.db.Model(&models.Customer{}).
		Select(`customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END),0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END),0) AS total_paid`).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Where("customers.name ILIKE ? OR customers.email ILIKE ?", like, like).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Scan(&rows).Error
	return rows, err
}

// Count returns the total customer count.
func (r *CustomerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}

// Create inserts a customer; used by seeding.
func (r *CustomerRepository) Create(c *models.Customer) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return r.db.Create(c).Error
}
