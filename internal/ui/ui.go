package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output is where status lines are printed.
var Output io.Writer = os.Stdout

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#00FF00"})

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF0000"})

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC6600", Dark: "#FFAA00"})

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#00AAFF"})

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#AA8800", Dark: "#FFDD00"})

	dangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"})
)

func Success(msg string) {
	fmt.Fprintln(Output, successStyle.Render("✓")+" "+msg)
}

func Failure(msg string) {
	fmt.Fprintln(Output, failureStyle.Render("✗")+" "+msg)
}

func Warn(msg string) {
	fmt.Fprintln(Output, warningStyle.Render("⚠")+" "+msg)
}

func Info(msg string) {
	fmt.Fprintln(Output, infoStyle.Render("ℹ")+" "+msg)
}

// Check prints a pass/fail line.
func Check(ok bool, msg string) {
	if ok {
		Success(msg)
		return
	}
	Failure(msg)
}

// Label prints a highlighted label followed by a value, e.g. "Using: shell.nix".
func Label(label, value string) {
	fmt.Fprintln(Output, labelStyle.Render(label+":")+" "+value)
}

// Danger renders text in the warning color used for destructive prompts.
func Danger(text string) string {
	return dangerStyle.Render(text)
}
