package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daymark/config"
	"daymark/internal/calendar"
	"daymark/internal/ui/components"
)

// View states
type appView int

const (
	viewMonth appView = iota
	viewPicker
	viewNote
	viewClearConfirm
)

// App is the main month-view TUI model. It owns a Planner and drives it
// synchronously from the event loop.
type App struct {
	planner   *calendar.Planner
	weekStart time.Weekday
	width     int
	height    int
	selected  calendar.Date
	view      appView
	err       error

	picker     components.LabelPicker
	pickTarget calendar.Date // day captured when the picker opened

	note       textinput.Model
	noteTarget calendar.Date
}

// NewApp builds the TUI around an existing planner. The planner outlives
// the program; callers can inspect it after Run returns.
func NewApp(planner *calendar.Planner, cfg config.Config) *App {
	now := time.Now()
	today, err := calendar.NewDate(now.Year(), now.Month(), now.Day())
	if err != nil {
		// time.Now always yields a representable date
		panic(err)
	}
	return &App{
		planner:   planner,
		weekStart: calendar.ParseWeekStart(cfg.WeekStart),
		selected:  today,
		view:      viewMonth,
	}
}

func (m *App) Init() tea.Cmd {
	return nil
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.view == viewNote {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewMonth:
		return m.handleMonthKeys(msg)
	case viewPicker:
		return m.handlePickerKeys(msg)
	case viewNote:
		return m.handleNoteKeys(msg)
	case viewClearConfirm:
		return m.handleClearConfirmKeys(msg)
	}
	return m, nil
}

func (m *App) handleMonthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Left):
		m.moveDays(-1)
		return m, nil

	case key.Matches(msg, keys.Right):
		m.moveDays(1)
		return m, nil

	case key.Matches(msg, keys.Up):
		m.moveDays(-7)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveDays(7)
		return m, nil

	case key.Matches(msg, keys.PrevMonth):
		m.moveMonths(-1)
		return m, nil

	case key.Matches(msg, keys.NextMonth):
		m.moveMonths(1)
		return m, nil

	case key.Matches(msg, keys.Today):
		now := time.Now()
		if d, err := calendar.NewDate(now.Year(), now.Month(), now.Day()); err == nil {
			m.selected = d
		}
		return m, nil

	case key.Matches(msg, keys.Assign):
		m.err = nil
		m.pickTarget = m.selected
		m.picker = components.NewLabelPicker(m.planner.Catalog())
		m.picker.SetSize(m.width, m.height)
		if label, ok := m.planner.Label(m.pickTarget); ok {
			m.picker.SetSelected(label)
		} else {
			m.picker.SetSelected("")
		}
		m.view = viewPicker
		return m, nil

	case key.Matches(msg, keys.ClearDay):
		m.planner.Clear(m.selected)
		return m, nil

	case key.Matches(msg, keys.Note):
		m.err = nil
		m.noteTarget = m.selected
		m.note = textinput.New()
		m.note.Placeholder = "Note for " + m.noteTarget.String()
		m.note.SetValue(m.planner.Note(m.noteTarget))
		m.note.CharLimit = 120
		m.note.Focus()
		m.view = viewNote
		return m, nil

	case key.Matches(msg, keys.ClearMonth):
		if len(m.planner.MonthEntries(m.selected.Year, m.selected.Month)) > 0 {
			m.view = viewClearConfirm
		}
		return m, nil
	}

	return m, nil
}

func (m *App) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = viewMonth
		return m, nil

	case "enter":
		// The picker always acts on the day it was opened for, even if
		// the grid moved underneath it.
		label := m.picker.CursorLabel()
		if label == "" {
			m.planner.Clear(m.pickTarget)
		} else if err := m.planner.Assign(m.pickTarget, label); err != nil {
			m.err = err
		}
		m.view = viewMonth
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *App) handleNoteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewMonth
		return m, nil

	case "enter":
		if err := m.planner.SetNote(m.noteTarget, m.note.Value()); err != nil {
			m.err = err
		}
		m.view = viewMonth
		return m, nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m *App) handleClearConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.planner.ClearMonth(m.selected.Year, m.selected.Month)
		m.view = viewMonth
		return m, nil

	case "n", "N", "esc", "q":
		m.view = viewMonth
		return m, nil
	}

	return m, nil
}

// moveDays shifts the selected day, clamped to the supported year range.
func (m *App) moveDays(delta int) {
	t := m.selected.Time().AddDate(0, 0, delta)
	d, err := calendar.NewDate(t.Year(), t.Month(), t.Day())
	if err != nil {
		return // at the edge of the supported range
	}
	m.selected = d
}

// moveMonths shifts the displayed month, clamping the day to the target
// month's length so Jan 31 lands on Feb 28/29.
func (m *App) moveMonths(delta int) {
	first := time.Date(m.selected.Year, m.selected.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	day := m.selected.Day
	if n := calendar.DaysInMonth(first.Year(), first.Month()); day > n {
		day = n
	}
	d, err := calendar.NewDate(first.Year(), first.Month(), day)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidDate) {
			return
		}
		m.err = err
		return
	}
	m.selected = d
}

// Selected returns the day under the cursor.
func (m *App) Selected() calendar.Date {
	return m.selected
}

// Key bindings
var keys = struct {
	Quit       key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Today      key.Binding
	Assign     key.Binding
	ClearDay   key.Binding
	Note       key.Binding
	ClearMonth key.Binding
}{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	Left:       key.NewBinding(key.WithKeys("left", "h")),
	Right:      key.NewBinding(key.WithKeys("right", "l")),
	Up:         key.NewBinding(key.WithKeys("up", "k")),
	Down:       key.NewBinding(key.WithKeys("down", "j")),
	PrevMonth:  key.NewBinding(key.WithKeys("H", "pgup")),
	NextMonth:  key.NewBinding(key.WithKeys("L", "pgdown")),
	Today:      key.NewBinding(key.WithKeys("t")),
	Assign:     key.NewBinding(key.WithKeys("enter", "a")),
	ClearDay:   key.NewBinding(key.WithKeys("x", "d")),
	Note:       key.NewBinding(key.WithKeys("n")),
	ClearMonth: key.NewBinding(key.WithKeys("C")),
}
