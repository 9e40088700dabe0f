package payroll

import (
	"errors"
	"fmt"
	"log"

	"evanails-backend/internal/audit"
	"evanails-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SaveDailyReportRequest struct {
	Date string           `json:"date"` // "YYYY-MM-DD"
	Rows []ReportRowInput `json:"rows"`
}

type ReportRowInput struct {
	ID     string   `json:"id"` // blank for new rows, one is generated
	Name   string   `json:"name"`
	Income *float64 `json:"income"`
	Tip    *float64 `json:"tip"`
}

type DailyReportResponse struct {
	Date string             `json:"date"`
	Rows []models.ReportRow `json:"rows"`
}

type WeeklySummaryItem struct {
	Name         string  `json:"name"`
	TotalIncome  float64 `json:"total_income"`
	TotalTip     float64 `json:"total_tip"`
	CheckPlusTip float64 `json:"check_plus_tip"`
	Cash         float64 `json:"cash"`
}

type WeeklyReportResponse struct {
	WeekStart string              `json:"week_start"`
	WeekEnd   string              `json:"week_end"`
	Summaries []WeeklySummaryItem `json:"summaries"`
}

func storeErrorToHTTP(err error) error {
	var partial *PartialReplaceError
	if errors.As(err, &partial) {
		// Delete went through but insert did not; the day may be sitting
		// empty. The admin needs to know to re-save, not just "try again".
		return fiber.NewError(fiber.StatusInternalServerError, partial.Error())
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return fiber.NewError(fiber.StatusInternalServerError, "Report store request failed")
	}
	return err
}

// -------------------------------------------------
// GET /api/admin/reports/daily?date=2024-06-03
// -------------------------------------------------
func GetDailyReportHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day := c.Query("date")
		if day == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date is required")
		}
		if _, err := ParseDayKey(day); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be 'YYYY-MM-DD'")
		}

		rows, err := BuildRoster(c.UserContext(), store, day)
		if err != nil {
			return storeErrorToHTTP(err)
		}

		return c.JSON(DailyReportResponse{Date: day, Rows: rows})
	}
}

// -------------------------------------------------
// PUT /api/admin/reports/daily
// -------------------------------------------------
func SaveDailyReportHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveDailyReportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date is required")
		}
		if _, err := ParseDayKey(body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be 'YYYY-MM-DD'")
		}

		rows := make([]models.ReportRow, 0, len(body.Rows))
		for _, in := range body.Rows {
			if in.Income != nil && *in.Income < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Income cannot be negative")
			}
			if in.Tip != nil && *in.Tip < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Tip cannot be negative")
			}
			rows = append(rows, models.ReportRow{
				ID:     in.ID,
				Name:   in.Name,
				Income: in.Income,
				Tip:    in.Tip,
			})
		}

		// Previous roster for the audit trail; a failed fetch only costs the log
		before, beforeErr := store.FetchByDay(c.UserContext(), body.Date)

		if err := SaveDay(c.UserContext(), store, body.Date, rows); err != nil {
			return storeErrorToHTTP(err)
		}

		// Re-fetch so the client gets the stored state back, not its own echo
		stored, err := BuildRoster(c.UserContext(), store, body.Date)
		if err != nil {
			return storeErrorToHTTP(err)
		}

		if beforeErr == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				EntityType:  "report_day",
				EntityID:    body.Date,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Daily report saved: %s (%d rows)", body.Date, len(stored)),
				Before:      before,
				After:       stored,
			}); logErr != nil {
				log.Printf("Could not write audit log: %v", logErr)
			}
		}

		return c.JSON(DailyReportResponse{Date: body.Date, Rows: stored})
	}
}

// -------------------------------------------------
// GET /api/admin/reports/weekly?start=2024-06-03
// start may be any day of the week, it is snapped to that week's Monday
// -------------------------------------------------
func GetWeeklyReportHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startStr := c.Query("start")
		if startStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "start is required")
		}
		start, err := ParseDayKey(startStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start must be 'YYYY-MM-DD'")
		}

		summaries, err := SummarizeWeek(c.UserContext(), store, start)
		if err != nil {
			return storeErrorToHTTP(err)
		}

		monday, sunday := WeekBounds(start)
		resp := WeeklyReportResponse{
			WeekStart: DayKey(monday),
			WeekEnd:   DayKey(sunday),
			Summaries: make([]WeeklySummaryItem, 0, len(summaries)),
		}
		for _, s := range summaries {
			resp.Summaries = append(resp.Summaries, WeeklySummaryItem{
				Name:         s.Name,
				TotalIncome:  s.TotalIncome,
				TotalTip:     s.TotalTip,
				CheckPlusTip: s.CheckPlusTip(),
				Cash:         s.Cash(),
			})
		}

		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/admin/reports/weekly/export?start=2024-06-03
// -------------------------------------------------
func ExportWeeklyReportHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startStr := c.Query("start")
		if startStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "start is required")
		}
		start, err := ParseDayKey(startStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start must be 'YYYY-MM-DD'")
		}

		summaries, err := SummarizeWeek(c.UserContext(), store, start)
		if err != nil {
			return storeErrorToHTTP(err)
		}

		f, err := WriteWeeklyWorkbook(summaries, start)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build the export file")
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not write the export file")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", WeeklyExportFilename(start)))
		return c.Send(buf.Bytes())
	}
}
