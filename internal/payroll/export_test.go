package payroll

import (
	"testing"
	"time"
)

func TestWeeklyExportFilenameKeyedByWeekStart(t *testing.T) {
	wednesday, _ := ParseDayKey("2024-06-05")
	if got := WeeklyExportFilename(wednesday); got != "weekly-pay-2024-06-03.xlsx" {
		t.Fatalf("expected weekly-pay-2024-06-03.xlsx, got %s", got)
	}
}

func TestWriteWeeklyWorkbook(t *testing.T) {
	summaries := []WeeklySummary{
		{Name: "Amy", TotalIncome: 150, TotalTip: 25},
		{Name: "Bo", TotalIncome: 200, TotalTip: 0},
	}
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)

	f, err := WriteWeeklyWorkbook(summaries, monday)
	if err != nil {
		t.Fatalf("WriteWeeklyWorkbook error: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue(exportSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue error: %v", err)
	}
	if title != "Weekly Pay: Jun 3, 2024 - Jun 9, 2024" {
		t.Fatalf("unexpected title line: %q", title)
	}

	cases := []struct {
		cell     string
		expected string
	}{
		{"A2", "Name"},
		{"B2", "Income"},
		{"C2", "Tip"},
		{"D2", "Check + Tip"},
		{"E2", "Cash"},
		{"A3", "Amy"},
		{"B3", "$150.00"},
		{"C3", "$25.00"},
		{"D3", "$79.00"},
		{"E3", "$36.00"},
		{"A4", "Bo"},
		{"B4", "$200.00"},
		{"C4", "$0.00"},
		{"D4", "$72.00"},
		{"E4", "$48.00"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue(exportSheet, tc.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error: %v", tc.cell, err)
		}
		if got != tc.expected {
			t.Fatalf("cell %s: expected %q, got %q", tc.cell, tc.expected, got)
		}
	}
}
