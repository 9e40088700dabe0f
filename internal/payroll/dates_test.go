package payroll

import (
	"testing"
	"time"
)

func TestDayKeyUsesLocalCalendarDay(t *testing.T) {
	// Late evening far west of Greenwich and early morning far east are the
	// cases where a UTC round trip shifts the calendar day.
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("west", -10*3600),
		time.FixedZone("east", 13*3600),
	}
	for _, loc := range zones {
		d := time.Date(2024, 6, 3, 23, 30, 0, 0, loc)
		if got := DayKey(d); got != "2024-06-03" {
			t.Fatalf("DayKey in %v: expected 2024-06-03, got %s", loc, got)
		}
		d = time.Date(2024, 6, 3, 0, 15, 0, 0, loc)
		if got := DayKey(d); got != "2024-06-03" {
			t.Fatalf("DayKey in %v: expected 2024-06-03, got %s", loc, got)
		}
	}
}

func TestDayKeyZeroPads(t *testing.T) {
	d := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	if got := DayKey(d); got != "2024-01-05" {
		t.Fatalf("expected 2024-01-05, got %s", got)
	}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		day      string
		expected string
	}{
		{"2024-06-03", "2024-06-03"}, // Monday maps to itself
		{"2024-06-04", "2024-06-03"},
		{"2024-06-05", "2024-06-03"},
		{"2024-06-06", "2024-06-03"},
		{"2024-06-07", "2024-06-03"},
		{"2024-06-08", "2024-06-03"},
		{"2024-06-09", "2024-06-03"}, // Sunday belongs to the week behind it
		{"2024-06-10", "2024-06-10"},
		{"2024-03-01", "2024-02-26"}, // month rollover
		{"2025-01-01", "2024-12-30"}, // year rollover
	}
	for _, tc := range cases {
		d, err := ParseDayKey(tc.day)
		if err != nil {
			t.Fatalf("ParseDayKey(%s) error: %v", tc.day, err)
		}
		monday := MondayOf(d)
		if got := DayKey(monday); got != tc.expected {
			t.Fatalf("MondayOf(%s): expected %s, got %s", tc.day, tc.expected, got)
		}
		if monday.Weekday() != time.Monday {
			t.Fatalf("MondayOf(%s) is a %s, not a Monday", tc.day, monday.Weekday())
		}
		if monday.After(d) {
			t.Fatalf("MondayOf(%s) is after the input day", tc.day)
		}
		if d.Sub(monday) > 7*24*time.Hour {
			t.Fatalf("MondayOf(%s) is more than a week back", tc.day)
		}
	}
}

func TestSundayFromIsSixCalendarDaysLater(t *testing.T) {
	monday, _ := ParseDayKey("2024-06-03")
	if got := DayKey(SundayFrom(monday)); got != "2024-06-09" {
		t.Fatalf("expected 2024-06-09, got %s", got)
	}
}

func TestSundayFromAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database not available: %v", err)
	}
	// US spring-forward on 2024-03-10; millisecond arithmetic would come up
	// an hour short of midnight here.
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, loc)
	sunday := SundayFrom(monday)
	if got := DayKey(sunday); got != "2024-03-10" {
		t.Fatalf("expected 2024-03-10, got %s", got)
	}
	if sunday.Hour() != 0 {
		t.Fatalf("expected midnight, got hour %d", sunday.Hour())
	}
}

func TestPrevNextDay(t *testing.T) {
	cases := []struct {
		day  string
		prev string
		next string
	}{
		{"2024-06-04", "2024-06-03", "2024-06-05"},
		{"2024-03-01", "2024-02-29", "2024-03-02"}, // leap February
		{"2024-01-01", "2023-12-31", "2024-01-02"},
	}
	for _, tc := range cases {
		prev, err := PrevDay(tc.day)
		if err != nil {
			t.Fatalf("PrevDay(%s) error: %v", tc.day, err)
		}
		if prev != tc.prev {
			t.Fatalf("PrevDay(%s): expected %s, got %s", tc.day, tc.prev, prev)
		}
		next, err := NextDay(tc.day)
		if err != nil {
			t.Fatalf("NextDay(%s) error: %v", tc.day, err)
		}
		if next != tc.next {
			t.Fatalf("NextDay(%s): expected %s, got %s", tc.day, tc.next, next)
		}
	}
}

func TestPrevDayRejectsBadKey(t *testing.T) {
	if _, err := PrevDay("06/03/2024"); err == nil {
		t.Fatal("expected an error for a non day-key input")
	}
}

func TestWeekNavigationAlwaysLandsOnMonday(t *testing.T) {
	// Navigation starts from a mid-week reference, not necessarily a Monday
	wednesday, _ := ParseDayKey("2024-06-05")

	prev := PrevWeek(wednesday)
	if got := DayKey(prev); got != "2024-05-27" {
		t.Fatalf("PrevWeek: expected 2024-05-27, got %s", got)
	}
	next := NextWeek(wednesday)
	if got := DayKey(next); got != "2024-06-10" {
		t.Fatalf("NextWeek: expected 2024-06-10, got %s", got)
	}
	if prev.Weekday() != time.Monday || next.Weekday() != time.Monday {
		t.Fatal("week navigation must always land on a Monday")
	}
}
