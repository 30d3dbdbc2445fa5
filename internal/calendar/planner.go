package calendar

import (
	"fmt"
	"sort"
	"time"
)

// DefaultCatalog is the built-in set of assignable labels. The catalog a
// Planner is created with never changes for the life of the process.
var DefaultCatalog = []string{
	"Meeting",
	"Appointment",
	"Reminder",
	"Deadline",
	"Birthday",
	"Travel",
	"Holiday",
	"Personal",
}

// Entry is the data attached to a single day.
type Entry struct {
	Label string
	Note  string
}

// Planner owns the label catalog and the date-to-entry assignments.
// It is not safe for concurrent use; the TUI drives it from a single
// event loop.
type Planner struct {
	catalog []string
	inSet   map[string]bool
	entries map[Date]Entry
}

// NewPlanner builds a planner around DefaultCatalog.
func NewPlanner() *Planner {
	return NewPlannerWithCatalog(DefaultCatalog)
}

// NewPlannerWithCatalog builds a planner around a custom catalog. The
// slice is copied; an empty catalog falls back to the default.
func NewPlannerWithCatalog(labels []string) *Planner {
	if len(labels) == 0 {
		labels = DefaultCatalog
	}
	p := &Planner{
		catalog: append([]string(nil), labels...),
		inSet:   make(map[string]bool, len(labels)),
		entries: make(map[Date]Entry),
	}
	for _, l := range p.catalog {
		p.inSet[l] = true
	}
	return p
}

// Catalog returns the labels in their fixed order. The returned slice is
// a copy.
func (p *Planner) Catalog() []string {
	return append([]string(nil), p.catalog...)
}

// Valid reports whether label is part of the catalog.
func (p *Planner) Valid(label string) bool {
	return p.inSet[label]
}

// Assign attaches a catalog label to a day, overwriting any previous
// label and keeping the day's note. Fails with ErrInvalidLabel for a
// label outside the catalog and ErrInvalidDate for an out-of-range date;
// failed calls leave the planner unchanged.
func (p *Planner) Assign(d Date, label string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !p.inSet[label] {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	e := p.entries[d]
	e.Label = label
	p.entries[d] = e
	return nil
}

// Clear removes the entry for a day. Clearing an unassigned day is a
// no-op, not an error.
func (p *Planner) Clear(d Date) {
	delete(p.entries, d)
}

// Label returns the label assigned to a day, if any.
func (p *Planner) Label(d Date) (string, bool) {
	e, ok := p.entries[d]
	if !ok || e.Label == "" {
		return "", false
	}
	return e.Label, true
}

// Highlighted reports whether a day should be highlighted, true iff it
// has a label.
func (p *Planner) Highlighted(d Date) bool {
	_, ok := p.Label(d)
	return ok
}

// Entry returns the full entry for a day, if any.
func (p *Planner) Entry(d Date) (Entry, bool) {
	e, ok := p.entries[d]
	return e, ok
}

// SetNote attaches a free-form note to a day. An empty note on a day
// without a label drops the entry entirely.
func (p *Planner) SetNote(d Date, note string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	e := p.entries[d]
	e.Note = note
	if e.Label == "" && e.Note == "" {
		delete(p.entries, d)
		return nil
	}
	p.entries[d] = e
	return nil
}

// Note returns the note for a day, empty when unset.
func (p *Planner) Note(d Date) string {
	return p.entries[d].Note
}

// ClearMonth removes every entry in the given month.
func (p *Planner) ClearMonth(year int, month time.Month) {
	for d := range p.entries {
		if d.Year == year && d.Month == month {
			delete(p.entries, d)
		}
	}
}

// MonthEntries returns the labeled or noted days of a month in day order.
func (p *Planner) MonthEntries(year int, month time.Month) []Date {
	var dates []Date
	for d := range p.entries {
		if d.Year == year && d.Month == month {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Day < dates[j].Day })
	return dates
}

// Len returns the number of days that currently hold an entry.
func (p *Planner) Len() int {
	return len(p.entries)
}
