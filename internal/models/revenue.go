package models

// Revenue is one month of chart data, keyed by short month name.
type Revenue struct {
	Month   string `gorm:"primaryKey;size:4" json:"month"`
	Revenue int64  `json:"revenue"`
}
