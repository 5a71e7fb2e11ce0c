package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MutationAuditLog records one create/update/delete of an invoice.
type MutationAuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID `gorm:"index"`
	Action    string    `gorm:"index"`
	Details   datatypes.JSON
	CreatedAt time.Time
}
