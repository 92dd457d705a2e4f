package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// stdout receives all human-oriented output. Tests swap it.
var stdout io.Writer = os.Stdout

// Colors adapt to light and dark terminal backgrounds.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "30", Dark: "37"}
	colorOK      = lipgloss.AdaptiveColor{Light: "28", Dark: "78"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	colorBad     = lipgloss.AdaptiveColor{Light: "124", Dark: "203"}
	colorLink    = lipgloss.AdaptiveColor{Light: "25", Dark: "111"}
	colorText    = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "244", Dark: "246"}
	colorSubdued = lipgloss.AdaptiveColor{Light: "250", Dark: "239"}
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleLink    = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorSubdued)
	styleValue   = lipgloss.NewStyle().Foreground(colorText)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted).Width(20)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleDeleted = lipgloss.NewStyle().Foreground(colorBad).Italic(true)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	styleTableHead  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true).Padding(0, 1)
	styleTableCell  = lipgloss.NewStyle().Padding(0, 1)
	styleTableFrame = lipgloss.NewStyle().Foreground(colorSubdued)
)

// statusLine prints msg behind a colored marker.
func statusLine(marker string, color lipgloss.TerminalColor, msg string) {
	fmt.Fprintln(stdout, lipgloss.NewStyle().Foreground(color).Render(marker)+" "+msg)
}

func printSuccess(format string, args ...any) {
	statusLine("✓", colorOK, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	statusLine("✗", colorBad, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	statusLine("!", colorWarn, lipgloss.NewStyle().Foreground(colorWarn).Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	statusLine("›", colorMuted, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+styleMuted.Render(fmt.Sprintf(format, args...)))
}

// printFile reports a written file. Used as the display's Saved callback.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+styleMuted.Render("→")+" "+styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, styleMuted.Render(description+":")+" "+styleCommand.Render(cmd))
}

// renderTable draws rows under headers inside a rounded frame.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableFrame).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHead
			}
			return styleTableCell
		}).
		Render()
}

// joinSets formats set specs for a table cell.
func joinSets(specs []string) string {
	if len(specs) == 0 {
		return "-"
	}
	return strings.Join(specs, ", ")
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
