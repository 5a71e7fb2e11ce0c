package repository

import (
	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// All returns every month of chart data.
func (r *RevenueRepository) All() ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := r.db.Find(&revenue).Error
	return revenue, err
}
