package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{1600, true},
		{4, true},
	}

	for _, test := range tests {
		if got := IsLeapYear(test.year); got != test.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", test.year, got, test.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, test := range tests {
		if got := DaysInMonth(test.year, test.month); got != test.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", test.year, test.month, got, test.want)
		}
	}
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{"leap_day_valid", 2024, time.February, 29, false},
		{"leap_day_invalid", 2023, time.February, 29, true},
		{"century_leap_day", 2000, time.February, 29, false},
		{"century_non_leap_day", 1900, time.February, 29, true},
		{"day_zero", 2024, time.March, 0, true},
		{"day_32", 2024, time.January, 32, true},
		{"april_31", 2024, time.April, 31, true},
		{"month_zero", 2024, 0, 1, true},
		{"month_13", 2024, 13, 1, true},
		{"year_zero", 0, time.June, 15, true},
		{"year_10000", 10000, time.June, 15, true},
		{"ordinary", 2024, time.July, 4, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewDate(test.year, test.month, test.day)
			if test.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDate error: %v", err)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d, err := NewDate(2024, time.February, 9)
	if err != nil {
		t.Fatalf("NewDate error: %v", err)
	}
	if got := d.String(); got != "2024-02-09" {
		t.Fatalf("String() = %q, want %q", got, "2024-02-09")
	}
}

func TestMonthGridCellCount(t *testing.T) {
	// The non-padding cell count must equal the true days in the month
	// for every month of a leap and a non-leap year.
	for _, year := range []int{2023, 2024} {
		for month := time.January; month <= time.December; month++ {
			g, err := MonthGrid(year, month, time.Sunday)
			if err != nil {
				t.Fatalf("MonthGrid(%d, %v) error: %v", year, month, err)
			}
			if got, want := g.Days(), DaysInMonth(year, month); got != want {
				t.Errorf("%d-%v: grid has %d days, want %d", year, month, got, want)
			}
		}
	}
}

func TestMonthGridFirstWeekday(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		weekStart time.Weekday
		wantCol   int // column of day 1 in the first week
	}{
		// 2024-07-01 is a Monday.
		{"july_2024_sunday_start", 2024, time.July, time.Sunday, 1},
		{"july_2024_monday_start", 2024, time.July, time.Monday, 0},
		// 2024-09-01 is a Sunday.
		{"sept_2024_sunday_start", 2024, time.September, time.Sunday, 0},
		{"sept_2024_monday_start", 2024, time.September, time.Monday, 6},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := MonthGrid(test.year, test.month, test.weekStart)
			if err != nil {
				t.Fatalf("MonthGrid error: %v", err)
			}
			for col, day := range g.Weeks[0] {
				if day == 1 {
					if col != test.wantCol {
						t.Fatalf("day 1 in column %d, want %d", col, test.wantCol)
					}
					return
				}
			}
			t.Fatalf("day 1 not found in first week: %v", g.Weeks[0])
		})
	}
}

func TestMonthGridOrdering(t *testing.T) {
	g, err := MonthGrid(2024, time.February, time.Sunday)
	if err != nil {
		t.Fatalf("MonthGrid error: %v", err)
	}

	seen := 0
	for _, week := range g.Weeks {
		for _, day := range week {
			if day == 0 {
				continue
			}
			seen++
			if day != seen {
				t.Fatalf("days out of order: got %d at position %d", day, seen)
			}
		}
	}
	if seen != 29 {
		t.Fatalf("expected 29 days for Feb 2024, got %d", seen)
	}
}

func TestMonthGridInvalidInput(t *testing.T) {
	if _, err := MonthGrid(2024, 0, time.Sunday); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("month 0: expected ErrInvalidDate, got %v", err)
	}
	if _, err := MonthGrid(2024, 13, time.Sunday); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("month 13: expected ErrInvalidDate, got %v", err)
	}
	if _, err := MonthGrid(0, time.June, time.Sunday); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("year 0: expected ErrInvalidDate, got %v", err)
	}
	if _, err := MonthGrid(10000, time.June, time.Sunday); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("year 10000: expected ErrInvalidDate, got %v", err)
	}
}

func TestGridWeekdays(t *testing.T) {
	g, err := MonthGrid(2024, time.March, time.Monday)
	if err != nil {
		t.Fatalf("MonthGrid error: %v", err)
	}
	names := g.Weekdays()
	if names[0] != "Mon" || names[6] != "Sun" {
		t.Fatalf("unexpected weekday order: %v", names)
	}
}

func TestParseWeekStart(t *testing.T) {
	if ParseWeekStart("monday") != time.Monday {
		t.Fatal("expected Monday")
	}
	if ParseWeekStart("sunday") != time.Sunday {
		t.Fatal("expected Sunday")
	}
	if ParseWeekStart("") != time.Sunday {
		t.Fatal("expected Sunday default")
	}
}
