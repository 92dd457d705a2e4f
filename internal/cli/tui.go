package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/oaiview/pkg/oai"
)

// RecordListModel is the bubbletea model for picking a record by its header.
// Deleted records are listed but cannot be selected.
type RecordListModel struct {
	Title    string
	Headers  []oai.Header
	Cursor   int
	Selected *oai.Header
	Height   int // visible rows
	Offset   int // first visible row
}

// NewRecordListModel creates a picker over headers.
func NewRecordListModel(title string, headers []oai.Header) RecordListModel {
	return RecordListModel{Title: title, Headers: headers, Height: 15}
}

func (m RecordListModel) Init() tea.Cmd { return nil }

// move shifts the cursor by delta rows, clamped to the list, and scrolls
// the window so the cursor stays visible.
func (m *RecordListModel) move(delta int) {
	if len(m.Headers) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Headers)-1)
	switch {
	case m.Cursor < m.Offset:
		m.Offset = m.Cursor
	case m.Cursor >= m.Offset+m.Height:
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m RecordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.move(0)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			m.move(-1)
		case "j", "down":
			m.move(1)
		case "pgup", "ctrl+u":
			m.move(-m.Height)
		case "pgdown", "ctrl+d":
			m.move(m.Height)
		case "g", "home":
			m.move(-len(m.Headers))
		case "G", "end":
			m.move(len(m.Headers))
		case "enter":
			if len(m.Headers) == 0 || m.Headers[m.Cursor].Deleted {
				return m, nil
			}
			h := m.Headers[m.Cursor]
			m.Selected = &h
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m RecordListModel) View() string {
	help := styleMuted.Render("j/k move  pgup/pgdn page  enter open  q quit")
	if len(m.Headers) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, styleTitle.Render(m.Title), help, "", styleMuted.Render("  no records"))
	}

	end := min(m.Offset+m.Height, len(m.Headers))
	visible := m.Headers[m.Offset:end]
	rows := make([][]string, len(visible))
	for i, h := range visible {
		marker := " "
		if m.Offset+i == m.Cursor {
			marker = "▸"
		}
		state := ""
		if h.Deleted {
			state = "deleted"
		}
		rows[i] = []string{marker, truncate(h.Identifier, 60), h.Datestamp, truncate(joinSets(h.SetSpecs), 30), state}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableFrame).
		Headers("", "Identifier", "Datestamp", "Sets", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHead
			}
			h := visible[row]
			s := styleTableCell
			switch {
			case h.Deleted && col == 4:
				return styleDeleted.Padding(0, 1)
			case h.Deleted:
				return s.Foreground(colorSubdued)
			case m.Offset+row == m.Cursor:
				return s.Foreground(colorOK).Bold(true)
			case col == 2 || col == 3:
				return s.Foreground(colorMuted)
			}
			return s
		})

	position := styleMuted.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Headers)))
	return lipgloss.JoinVertical(lipgloss.Left, styleTitle.Render(m.Title), help, "", t.Render(), position)
}
