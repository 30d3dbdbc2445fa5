// Package calendar implements the date model behind the month view:
// validated dates, month grid layout, and the per-day label planner.
// It does no rendering and holds no reference to the UI.
package calendar

import (
	"fmt"
	"time"
)

// Year bounds accepted by NewDate and MonthGrid.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a validated (year, month, day) triple. Construct via NewDate;
// the zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates and builds a Date. The day must exist in the given
// month/year, February 29 only on leap years.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Validate reports whether the date is in range.
func (d Date) Validate() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, d.Year)
	}
	if d.Month < time.January || d.Month > time.December {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: %04d-%02d has no day %d", ErrInvalidDate, d.Year, d.Month, d.Day)
	}
	return nil
}

// Time returns the date at midnight local time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// String returns the date in "2006-01-02" format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsLeapYear reports whether year is a leap year: divisible by 4 and
// either not by 100 or also by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month, 29 for
// February on leap years.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// Grid is the derived layout for one month: ordered weeks of seven cells,
// where a cell holds a day number or 0 for padding outside the month.
// Grids are recomputed per view and never stored.
type Grid struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Weeks     [][7]int
}

// MonthGrid computes the week/day layout for a month. weekStart selects
// which weekday begins each row (Sunday and Monday are the useful values,
// any weekday works).
func MonthGrid(year int, month time.Month, weekStart time.Weekday) (Grid, error) {
	if year < MinYear || year > MaxYear {
		return Grid{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December {
		return Grid{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	// Column of day 1 relative to the configured week start.
	offset := (int(first) - int(weekStart) + 7) % 7
	days := DaysInMonth(year, month)

	g := Grid{Year: year, Month: month, WeekStart: weekStart}
	var week [7]int
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g, nil
}

// Date returns the validated Date for a day number in this grid's month.
func (g Grid) Date(day int) (Date, error) {
	return NewDate(g.Year, g.Month, day)
}

// Days returns the number of real (non-padding) cells in the grid.
func (g Grid) Days() int {
	n := 0
	for _, week := range g.Weeks {
		for _, day := range week {
			if day != 0 {
				n++
			}
		}
	}
	return n
}

// Weekdays returns the seven weekday names in grid order, abbreviated to
// three letters for column headers.
func (g Grid) Weekdays() []string {
	names := make([]string, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(g.WeekStart) + i) % 7)
		names[i] = wd.String()[:3]
	}
	return names
}

// ParseWeekStart maps a config value to a weekday, defaulting to Sunday.
func ParseWeekStart(s string) time.Weekday {
	if s == "monday" {
		return time.Monday
	}
	return time.Sunday
}
