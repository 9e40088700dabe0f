package payroll

import (
	"context"

	"evanails-backend/internal/models"

	"github.com/google/uuid"
)

// BuildRoster returns the rows to show for day. If the day already has rows
// they are returned unchanged. If it is empty, the distinct names from the
// previous day are carried over as fresh rows with no income or tip entered,
// so the staff list does not have to be retyped every morning. Carried-over
// rows live in memory only; nothing is written until SaveDay.
func BuildRoster(ctx context.Context, store Store, day string) ([]models.ReportRow, error) {
	rows, err := store.FetchByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return rows, nil
	}

	prevDay, err := PrevDay(day)
	if err != nil {
		return nil, err
	}

	prevRows, err := store.FetchByDay(ctx, prevDay)
	if err != nil {
		return nil, err
	}

	// Distinct names, first-occurrence order
	seen := make(map[string]bool, len(prevRows))
	carried := make([]models.ReportRow, 0, len(prevRows))
	for _, r := range prevRows {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		carried = append(carried, models.ReportRow{
			ID:   uuid.NewString(),
			Name: r.Name,
			Date: day,
		})
	}

	return carried, nil
}
