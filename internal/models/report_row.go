package models

import "time"

// ReportRow: one person's recorded income/tip for one calendar day.
// The set of rows for a date is the complete roster for that day;
// saves replace the whole day rather than merging.
type ReportRow struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	// nil means "not yet entered", distinct from 0. Persisted rows always
	// carry 0 instead of nil; nil only survives in carried-over rosters.
	Income *float64 `json:"income"`
	Tip    *float64 `json:"tip"`
	// Local calendar day as "YYYY-MM-DD". Stored as text so exact-day and
	// range queries compare lexicographically, which matches chronologically.
	Date      string    `gorm:"size:10;index;not null" json:"date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ReportRow) TableName() string { return "report" }
