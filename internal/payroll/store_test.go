package payroll

import (
	"context"
	"errors"
	"sort"

	"evanails-backend/internal/models"
)

var errInsertRejected = errors.New("insert rejected")

// fakeStore keeps rosters in memory and mimics the delete-then-insert shape
// of the real store, including the partial replace failure mode.
type fakeStore struct {
	days       map[string][]models.ReportRow
	fetchErr   error
	failInsert bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{days: make(map[string][]models.ReportRow)}
}

func (f *fakeStore) seed(day string, rows ...models.ReportRow) {
	for i := range rows {
		rows[i].Date = day
	}
	f.days[day] = append(f.days[day], rows...)
}

func (f *fakeStore) FetchByDay(_ context.Context, day string) ([]models.ReportRow, error) {
	if f.fetchErr != nil {
		return nil, &StoreError{Op: "fetch by day", Err: f.fetchErr}
	}
	return append([]models.ReportRow(nil), f.days[day]...), nil
}

func (f *fakeStore) FetchByRange(_ context.Context, start, end string) ([]models.ReportRow, error) {
	if f.fetchErr != nil {
		return nil, &StoreError{Op: "fetch by range", Err: f.fetchErr}
	}
	keys := make([]string, 0, len(f.days))
	for k := range f.days {
		if k >= start && k <= end {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys) // day keys sort chronologically
	var out []models.ReportRow
	for _, k := range keys {
		out = append(out, f.days[k]...)
	}
	return out, nil
}

func (f *fakeStore) ReplaceDay(_ context.Context, day string, rows []models.ReportRow) error {
	delete(f.days, day)
	if f.failInsert && len(rows) > 0 {
		return &PartialReplaceError{Day: day, Err: errInsertRejected}
	}
	if len(rows) == 0 {
		return nil
	}
	stamped := make([]models.ReportRow, len(rows))
	for i, r := range rows {
		r.Date = day
		stamped[i] = r
	}
	f.days[day] = stamped
	return nil
}

func fp(v float64) *float64 { return &v }
