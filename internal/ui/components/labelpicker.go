package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClearChoice is the picker entry that removes a day's label instead of
// assigning one. It is not part of the catalog.
const ClearChoice = "None"

// LabelPicker is a centered modal list for choosing a label from the
// fixed catalog.
type LabelPicker struct {
	items    []string // ClearChoice followed by the catalog, in order
	cursor   int
	selected string // label currently on the target day, "" for none
	width    int
	height   int
}

// NewLabelPicker builds a picker over the given catalog. The catalog
// order is preserved; ClearChoice is always the first item.
func NewLabelPicker(catalog []string) LabelPicker {
	items := make([]string, 0, len(catalog)+1)
	items = append(items, ClearChoice)
	items = append(items, catalog...)
	return LabelPicker{
		items:  items,
		width:  80,
		height: 24,
	}
}

// SetSelected positions the cursor on the day's current label, or on
// ClearChoice when the day is unlabeled.
func (p *LabelPicker) SetSelected(label string) {
	if label == "" {
		label = ClearChoice
	}
	p.selected = label
	p.cursor = 0
	for i, item := range p.items {
		if item == label {
			p.cursor = i
			return
		}
	}
}

func (p *LabelPicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p LabelPicker) Update(msg tea.Msg) (LabelPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case "home", "g":
			p.cursor = 0
		case "end", "G":
			p.cursor = len(p.items) - 1
		}
	}
	return p, nil
}

func (p LabelPicker) View() string {
	var b strings.Builder

	for i, item := range p.items {
		prefix := "  "
		if item == p.selected {
			prefix = "● "
		}

		style := lipgloss.NewStyle().Padding(0, 2)
		switch {
		case i == p.cursor:
			style = style.
				Bold(true).
				Foreground(Text).
				Background(Primary)
		case item == p.selected:
			style = style.
				Bold(true).
				Foreground(Primary)
		case item == ClearChoice:
			style = style.Foreground(Muted)
		default:
			style = style.Foreground(Text)
		}

		b.WriteString(style.Render(prefix + item))
		if i < len(p.items)-1 {
			b.WriteString("\n")
		}
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Assign label"),
		"",
		b.String(),
		"",
		hintStyle.Render("↑/↓ move • enter select • esc cancel"),
	)

	// Center in the available space
	return lipgloss.Place(
		p.width,
		p.height-4,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 3).
			Render(content),
	)
}

// CursorLabel returns the catalog label under the cursor, or "" when the
// cursor is on ClearChoice.
func (p LabelPicker) CursorLabel() string {
	if p.cursor >= 0 && p.cursor < len(p.items) {
		if item := p.items[p.cursor]; item != ClearChoice {
			return item
		}
	}
	return ""
}
