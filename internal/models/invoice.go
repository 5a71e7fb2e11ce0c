package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice amounts are stored in minor currency units (cents).
type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   *Customer `json:"customer,omitempty"`
	Amount     int64     `gorm:"index;not null" json:"amount"`
	Status     string    `gorm:"index;not null" json:"status"`
	Date       time.Time `gorm:"index" json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}
