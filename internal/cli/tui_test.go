package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/oaiview/pkg/oai"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m RecordListModel, keys ...string) (RecordListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(RecordListModel)
	}
	return m, cmd
}

var testHeaders = []oai.Header{
	{Identifier: "oai:x:1", Datestamp: "2024-01-01"},
	{Identifier: "oai:x:2", Deleted: true},
	{Identifier: "oai:x:3", SetSpecs: []string{"art"}},
}

func TestRecordListModel_Navigate(t *testing.T) {
	m := NewRecordListModel("Records", testHeaders)

	m, _ = press(m, "down", "down", "down")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d after moving past the end, want 2", m.Cursor)
	}
	m, _ = press(m, "up", "k")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	m, _ = press(m, "G")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d after G, want 2", m.Cursor)
	}
}

func TestRecordListModel_Select(t *testing.T) {
	m := NewRecordListModel("Records", testHeaders)

	m, cmd := press(m, "j", "enter")
	if m.Selected != nil || cmd != nil {
		t.Error("a deleted record should not be selectable")
	}

	m, cmd = press(m, "j", "enter")
	if m.Selected == nil || m.Selected.Identifier != "oai:x:3" {
		t.Fatalf("Selected = %+v, want oai:x:3", m.Selected)
	}
	if cmd == nil {
		t.Error("selection should quit the program")
	}
}

func TestRecordListModel_View(t *testing.T) {
	m := NewRecordListModel("Pick a record", testHeaders)
	v := m.View()
	for _, want := range []string{"Pick a record", "oai:x:1", "deleted", "art", "[1/3]"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	empty := NewRecordListModel("Nothing", nil).View()
	if !strings.Contains(empty, "no records") {
		t.Errorf("View() for empty list = %q", empty)
	}
	if _, cmd := press(NewRecordListModel("", nil), "enter"); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestRecordListModel_Scroll(t *testing.T) {
	headers := make([]oai.Header, 40)
	for i := range headers {
		headers[i].Identifier = fmt.Sprintf("oai:x:%d", i)
	}
	m := NewRecordListModel("Records", headers)
	m.Height = 10

	m, _ = press(m, "pgdown", "pgdown")
	if m.Cursor != 20 || m.Offset != 11 {
		t.Errorf("after two pages: Cursor = %d, Offset = %d, want 20, 11", m.Cursor, m.Offset)
	}
	m, _ = press(m, "g")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("after g: Cursor = %d, Offset = %d", m.Cursor, m.Offset)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Height: 4})
	if got := next.(RecordListModel).Height; got != 5 {
		t.Errorf("Height = %d, want minimum 5", got)
	}
}
