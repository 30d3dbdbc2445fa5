package ui

import (
	"fmt"
	"strings"
	"time"

	"daymark/internal/calendar"
	"daymark/internal/ui/utils"
)

func (m *App) View() string {
	switch m.view {
	case viewPicker:
		return m.picker.View()
	case viewNote:
		return m.renderNoteEditor()
	case viewClearConfirm:
		return m.renderClearConfirm()
	default:
		return m.renderMonth()
	}
}

func (m *App) renderMonth() string {
	var b strings.Builder

	header := m.selected.Time().Format("January 2006")
	b.WriteString(monthHeaderStyle.Render(header))
	b.WriteString("\n\n")

	grid, err := calendar.MonthGrid(m.selected.Year, m.selected.Month, m.weekStart)
	if err != nil {
		// Selected is a validated Date, so this is unreachable; keep the
		// error visible rather than panicking mid-frame.
		return errorStyle.Render(fmt.Sprintf("Error: %v", err))
	}

	for _, name := range grid.Weekdays() {
		b.WriteString(weekdayStyle.Render(name))
	}
	b.WriteString("\n")

	b.WriteString(m.renderGrid(grid))
	b.WriteString("\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", min(max(m.width, 20), 50))))
	b.WriteString("\n\n")

	b.WriteString(m.renderDayDetail())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m *App) renderGrid(grid calendar.Grid) string {
	var b strings.Builder

	now := time.Now()
	isToday := func(day int) bool {
		return grid.Year == now.Year() && grid.Month == now.Month() && day == now.Day()
	}

	for _, week := range grid.Weeks {
		for _, day := range week {
			if day == 0 {
				b.WriteString(dayStyle.Render(""))
				continue
			}

			d := calendar.Date{Year: grid.Year, Month: grid.Month, Day: day}

			content := fmt.Sprintf("%2d", day)
			if m.planner.Highlighted(d) {
				content += labeledDotStyle.Render("•")
			} else {
				content += " "
			}

			switch {
			case d == m.selected:
				b.WriteString(selectedDayStyle.Render(content))
			case isToday(day):
				b.WriteString(todayStyle.Render(content))
			default:
				b.WriteString(dayStyle.Render(content))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *App) renderDayDetail() string {
	var b strings.Builder

	b.WriteString(detailDateStyle.Render(m.selected.Time().Format("Mon, Jan 2")))
	b.WriteString("\n\n")

	entry, ok := m.planner.Entry(m.selected)
	if !ok {
		b.WriteString(emptyDayStyle.Render("  No label"))
		return b.String()
	}

	if entry.Label != "" {
		b.WriteString("  ")
		b.WriteString(detailLabelStyle.Render(entry.Label))
		b.WriteString("\n")
	}
	if entry.Note != "" {
		width := m.width - 6
		if width < 20 {
			width = 20
		}
		b.WriteString("  ")
		b.WriteString(detailNoteStyle.Render(utils.TruncateStr(entry.Note, width)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *App) renderNoteEditor() string {
	var b strings.Builder

	b.WriteString(noteTitleStyle.Render("Note — " + m.noteTarget.Time().Format("Mon, Jan 2")))
	b.WriteString("\n\n")
	b.WriteString(m.note.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter save • esc cancel"))

	return b.String()
}

func (m *App) renderClearConfirm() string {
	var b strings.Builder

	month := m.selected.Time().Format("January 2006")
	count := len(m.planner.MonthEntries(m.selected.Year, m.selected.Month))

	b.WriteString(confirmTitleStyle.Render("Clear Month?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Erase %d entries for %s?\n\n", count, month))
	b.WriteString(helpStyle.Render("y: yes  n: no"))

	return b.String()
}

func (m *App) renderHelpBar() string {
	help := []string{
		helpKeyStyle.Render("←/→") + " day",
		helpKeyStyle.Render("↑/↓") + " week",
		helpKeyStyle.Render("H/L") + " month",
		helpKeyStyle.Render("t") + " today",
		helpKeyStyle.Render("enter") + " label",
		helpKeyStyle.Render("x") + " clear",
		helpKeyStyle.Render("n") + " note",
		helpKeyStyle.Render("C") + " clear month",
		helpKeyStyle.Render("q") + " quit",
	}

	return helpStyle.Render(strings.Join(help, "  "))
}
