package payroll

import (
	"context"
	"time"
)

// Payout split: the shop keeps 40% of income, the remaining 60% commission is
// paid 60% by check and 40% in cash. Tips go entirely onto the check.
const (
	commissionRate = 0.6
	checkShare     = 0.6
	cashShare      = 0.4
)

// WeeklySummary is one person's totals for a Monday-through-Sunday week.
// Recomputed on every query, never persisted.
type WeeklySummary struct {
	Name        string  `json:"name"`
	TotalIncome float64 `json:"total_income"`
	TotalTip    float64 `json:"total_tip"`
}

// CheckPlusTip is the check-side payout: totalIncome * 0.6 * 0.6 + totalTip.
func (s WeeklySummary) CheckPlusTip() float64 {
	return s.TotalIncome*commissionRate*checkShare + s.TotalTip
}

// Cash is the cash-side payout: totalIncome * 0.6 * 0.4.
func (s WeeklySummary) Cash() float64 {
	return s.TotalIncome * commissionRate * cashShare
}

// WeekBounds returns the Monday and Sunday enclosing weekStart's week.
func WeekBounds(weekStart time.Time) (time.Time, time.Time) {
	monday := MondayOf(weekStart)
	return monday, SundayFrom(monday)
}

// SummarizeWeek fetches the rows of the week containing weekStart and groups
// them by exact name, summing income and tip with nil treated as 0.
// Summaries come back in first-occurrence order of the fetched rows. Two rows
// carrying the same name are summed into one summary; names that differ in
// case or whitespace are different people as far as this report is concerned.
func SummarizeWeek(ctx context.Context, store Store, weekStart time.Time) ([]WeeklySummary, error) {
	monday, sunday := WeekBounds(weekStart)

	rows, err := store.FetchByRange(ctx, DayKey(monday), DayKey(sunday))
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(rows))
	summaries := make([]WeeklySummary, 0, len(rows))
	for _, r := range rows {
		i, ok := index[r.Name]
		if !ok {
			i = len(summaries)
			index[r.Name] = i
			summaries = append(summaries, WeeklySummary{Name: r.Name})
		}
		if r.Income != nil {
			summaries[i].TotalIncome += *r.Income
		}
		if r.Tip != nil {
			summaries[i].TotalTip += *r.Tip
		}
	}

	return summaries, nil
}
