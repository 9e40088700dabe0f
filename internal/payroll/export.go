package payroll

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Weekly Pay"

// WeeklyExportFilename keys the workbook file by the week's start day.
func WeeklyExportFilename(weekStart time.Time) string {
	return "weekly-pay-" + DayKey(MondayOf(weekStart)) + ".xlsx"
}

// WriteWeeklyWorkbook renders the weekly pay table as a spreadsheet: a title
// line naming the week's range, a header row, and one row per person with the
// dollar amounts formatted to two decimals. The column values and their
// formulas are the contract here; the layout is just what the shop is used to
// printing.
func WriteWeeklyWorkbook(summaries []WeeklySummary, weekStart time.Time) (*excelize.File, error) {
	monday, sunday := WeekBounds(weekStart)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Weekly Pay: %s - %s", monday.Format("Jan 2, 2006"), sunday.Format("Jan 2, 2006"))
	f.SetCellValue(exportSheet, "A1", title)

	// Header row
	f.SetCellValue(exportSheet, "A2", "Name")
	f.SetCellValue(exportSheet, "B2", "Income")
	f.SetCellValue(exportSheet, "C2", "Tip")
	f.SetCellValue(exportSheet, "D2", "Check + Tip")
	f.SetCellValue(exportSheet, "E2", "Cash")

	for i, s := range summaries {
		row := fmt.Sprint(i + 3)
		f.SetCellValue(exportSheet, "A"+row, s.Name)
		f.SetCellValue(exportSheet, "B"+row, fmt.Sprintf("$%.2f", s.TotalIncome))
		f.SetCellValue(exportSheet, "C"+row, fmt.Sprintf("$%.2f", s.TotalTip))
		f.SetCellValue(exportSheet, "D"+row, fmt.Sprintf("$%.2f", s.CheckPlusTip()))
		f.SetCellValue(exportSheet, "E"+row, fmt.Sprintf("$%.2f", s.Cash()))
	}

	return f, nil
}
