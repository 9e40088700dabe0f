package payroll

import (
	"context"

	"evanails-backend/internal/models"

	"github.com/google/uuid"
)

// SaveDay persists rows as the complete roster for day, replacing whatever
// the day held before. Rows without an id get one generated; nil income/tip
// are normalized to 0 on the way down (the nil-vs-zero distinction is an
// editing affordance, stored rows are always numeric). After a successful
// save the caller should re-fetch via BuildRoster to pick up the stored
// state.
//
// Saving the same rows twice, ids included, leaves the same persisted set as
// saving them once.
func SaveDay(ctx context.Context, store Store, day string, rows []models.ReportRow) error {
	zero := 0.0

	clean := make([]models.ReportRow, len(rows))
	for i, r := range rows {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.Income == nil {
			income := zero
			r.Income = &income
		}
		if r.Tip == nil {
			tip := zero
			r.Tip = &tip
		}
		r.Date = day
		clean[i] = r
	}

	return store.ReplaceDay(ctx, day, clean)
}
