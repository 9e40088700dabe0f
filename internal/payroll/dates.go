package payroll

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey formats t as "YYYY-MM-DD" using its own calendar day, never a UTC
// conversion. Converting local dates through UTC shifts the day for anyone
// west of Greenwich after office hours, which is exactly when reports get
// entered.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey reads a "YYYY-MM-DD" day key as a local calendar day.
func ParseDayKey(day string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, day, time.Local)
}

// MondayOf returns the Monday of the week containing t, at midnight in t's
// location. Sunday belongs to the week that started six days earlier.
func MondayOf(t time.Time) time.Time {
	day := int(t.Weekday()) // 0=Sunday .. 6=Saturday
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, diff)
}

// SundayFrom returns the Sunday that closes the week starting at monday.
// Calendar-day arithmetic on purpose: adding 6*24h of wall-clock time lands
// an hour off across a DST transition.
func SundayFrom(monday time.Time) time.Time {
	return monday.AddDate(0, 0, 6)
}

// PrevDay returns the day key for the calendar day before day.
func PrevDay(day string) (string, error) {
	t, err := ParseDayKey(day)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, -1)), nil
}

// NextDay returns the day key for the calendar day after day.
func NextDay(day string) (string, error) {
	t, err := ParseDayKey(day)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, 1)), nil
}

// PrevWeek shifts t back seven days and snaps to that week's Monday.
func PrevWeek(t time.Time) time.Time {
	return MondayOf(t.AddDate(0, 0, -7))
}

// NextWeek shifts t forward seven days and snaps to that week's Monday.
func NextWeek(t time.Time) time.Time {
	return MondayOf(t.AddDate(0, 0, 7))
}
