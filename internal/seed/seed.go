// Package seed loads development fixtures: one dashboard user, a
// handful of customers with invoices, and a year of revenue.
package seed

import (
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/services/auth"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedCustomer struct {
	name  string
	email string
	image string
}

type seedInvoice struct {
	customer int // index into customers
	amount   int64
	status   string
	date     string
}

var customers = []seedCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoices = []seedInvoice{
	{0, 15795, "pending", "2025-12-06"},
	{1, 20348, "pending", "2025-11-14"},
	{4, 3040, "paid", "2025-10-29"},
	{3, 44800, "paid", "2025-09-10"},
	{5, 34577, "pending", "2025-08-05"},
	{2, 54246, "pending", "2025-07-16"},
	{0, 666, "pending", "2025-06-27"},
	{3, 32545, "paid", "2025-06-09"},
	{4, 1250, "paid", "2025-06-17"},
	{5, 8546, "paid", "2025-06-07"},
	{1, 500, "paid", "2025-08-19"},
	{5, 8945, "paid", "2025-06-03"},
	{2, 1000, "paid", "2025-06-05"},
}

var revenue = map[string]int64{
	"Jan": 2000, "Feb": 1800, "Mar": 2200, "Apr": 2500,
	"May": 2300, "Jun": 3200, "Jul": 3500, "Aug": 3700,
	"Sep": 2500, "Oct": 2800, "Nov": 3000, "Dec": 4800,
}

// Run inserts the fixtures, skipping rows that already exist so a
// restart with seeding enabled stays idempotent.
func Run(db *gorm.DB) error {
	hash, err := auth.HashPassword("123456")
	if err != nil {
		return err
	}
	user := models.User{
		ID:       uuid.New(),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: hash,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, len(customers))
	for i, c := range customers {
		var existing models.Customer
		if err := db.First(&existing, "email = ?", c.email).Error; err == nil {
			ids[i] = existing.ID
			continue
		}
		ids[i] = uuid.New()
		row := models.Customer{
			ID:       ids[i],
			Name:     c.name,
			Email:    c.email,
			ImageURL: c.image,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	var invoiceCount int64
	if err := db.Model(&models.Invoice{}).Count(&invoiceCount).Error; err != nil {
		return err
	}
	if invoiceCount == 0 {
		for _, inv := range invoices {
			date, err := time.Parse("2006-01-02", inv.date)
			if err != nil {
				return err
			}
			row := models.Invoice{
				ID:         uuid.New(),
				CustomerID: ids[inv.customer],
				Amount:     inv.amount,
				Status:     inv.status,
				Date:       date,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	for month, amount := range revenue {
		row := models.Revenue{Month: month, Revenue: amount}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	log.Info().Int("customers", len(customers)).Int("invoices", len(invoices)).Msg("database seeded")
	return nil
}
