package payroll

import (
	"context"
	"fmt"

	"evanails-backend/internal/models"

	"gorm.io/gorm"
)

// Store is the narrow gateway the payroll core needs from the report table.
type Store interface {
	// FetchByDay returns every row with date == day.
	FetchByDay(ctx context.Context, day string) ([]models.ReportRow, error)
	// FetchByRange returns every row with start <= date <= end, both inclusive.
	FetchByRange(ctx context.Context, start, end string) ([]models.ReportRow, error)
	// ReplaceDay deletes all rows for day and inserts rows in their place,
	// each stamped with date = day. Delete and insert are two separate
	// statements; a failure in between is reported as *PartialReplaceError.
	ReplaceDay(ctx context.Context, day string, rows []models.ReportRow) error
}

// StoreError wraps a transport or query failure from the report store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("report store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// PartialReplaceError means the delete step of a replace succeeded but the
// insert step did not. The day may now hold zero rows even though the intent
// was to replace them, so callers must surface this distinctly and ask for a
// re-save.
type PartialReplaceError struct {
	Day string
	Err error
}

func (e *PartialReplaceError) Error() string {
	return fmt.Sprintf("partial replace for %s: the day may be empty, please re-save: %v", e.Day, e.Err)
}

func (e *PartialReplaceError) Unwrap() error { return e.Err }

// GormStore implements Store on the report table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FetchByDay(ctx context.Context, day string) ([]models.ReportRow, error) {
	var rows []models.ReportRow
	if err := s.db.WithContext(ctx).
		Where("date = ?", day).
		Order("created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, &StoreError{Op: "fetch by day", Err: err}
	}
	return rows, nil
}

func (s *GormStore) FetchByRange(ctx context.Context, start, end string) ([]models.ReportRow, error) {
	var rows []models.ReportRow
	if err := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date asc, created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, &StoreError{Op: "fetch by range", Err: err}
	}
	return rows, nil
}

// ReplaceDay mirrors what the admin dashboard used to do against the hosted
// row store: delete the whole day, then insert the current roster. The two
// steps are intentionally not wrapped in a transaction so the failure mode
// matches the remote-store contract the callers are written against.
func (s *GormStore) ReplaceDay(ctx context.Context, day string, rows []models.ReportRow) error {
	if err := s.db.WithContext(ctx).
		Where("date = ?", day).
		Delete(&models.ReportRow{}).Error; err != nil {
		return &StoreError{Op: "delete day", Err: err}
	}

	if len(rows) == 0 {
		return nil
	}

	stamped := make([]models.ReportRow, len(rows))
	for i, r := range rows {
		r.Date = day
		stamped[i] = r
	}

	if err := s.db.WithContext(ctx).Create(&stamped).Error; err != nil {
		return &PartialReplaceError{Day: day, Err: err}
	}
	return nil
}
