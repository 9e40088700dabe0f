package models

import "time"

type Service struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50;index;not null" json:"category"` // Manicure, Pedicure, Nail Enhancement, ...
	// Optional tiered prices for enhancement services
	FullSetPrice *float64  `json:"full_set_price"`
	FillInsPrice *float64  `json:"fill_ins_price"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
