package models

import "time"

type GalleryImage struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"size:100" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	ImageURL    string `gorm:"size:255;not null" json:"image_url"`
	Category    string `gorm:"size:50;index;not null" json:"category"`
	// Position within its category on the public gallery page
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
