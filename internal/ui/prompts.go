package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#AD8EE6"})

	promptSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#00FF00"})

	promptUnselectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})

	promptCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#AD8EE6"})

	promptDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// ============================================================================
// Yes/No Prompt
// ============================================================================

// YesNoPrompt is an arrow-key yes/no question.
type YesNoPrompt struct {
	question  string
	selected  bool // true = Yes
	confirmed bool
	cancelled bool
}

func NewYesNoPrompt(question string, defaultYes bool) YesNoPrompt {
	return YesNoPrompt{question: question, selected: defaultYes}
}

func (m YesNoPrompt) Init() tea.Cmd {
	return nil
}

func (m YesNoPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			m.selected = true
		case "right", "l":
			m.selected = false
		case "tab":
			m.selected = !m.selected
		case "y", "Y":
			m.selected = true
			m.confirmed = true
			return m, tea.Quit
		case "n", "N":
			m.selected = false
			m.confirmed = true
			return m, tea.Quit
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m YesNoPrompt) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("? ") + m.question + "\n\n")

	yes, no := promptUnselectedStyle.Render("Yes"), promptUnselectedStyle.Render("No")
	yesCursor, noCursor := "  ", "  "
	if m.selected {
		yes = promptSelectedStyle.Render("Yes")
		yesCursor = promptCursorStyle.Render("❯ ")
	} else {
		no = promptSelectedStyle.Render("No")
		noCursor = promptCursorStyle.Render("❯ ")
	}
	b.WriteString(yesCursor + yes + "    " + noCursor + no + "\n\n")
	b.WriteString(promptDimStyle.Render("  y/n or ← → then enter • esc to cancel"))
	return b.String()
}

// Answer reports the choice. A cancelled prompt counts as "no".
func (m YesNoPrompt) Answer() bool {
	return m.confirmed && !m.cancelled && m.selected
}

// Confirm asks a yes/no question on the terminal. The default answer is no.
func Confirm(question string) (bool, error) {
	model, err := tea.NewProgram(NewYesNoPrompt(question, false)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return model.(YesNoPrompt).Answer(), nil
}

// ============================================================================
// Text Input Prompt
// ============================================================================

// TextInputPrompt asks for a single line of text.
type TextInputPrompt struct {
	title     string
	input     textinput.Model
	confirmed bool
	cancelled bool
}

func NewTextInputPrompt(title, defaultVal string) TextInputPrompt {
	ti := textinput.New()
	ti.Placeholder = defaultVal
	ti.SetValue(defaultVal)
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return TextInputPrompt{title: title, input: ti}
}

func (m TextInputPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m TextInputPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.confirmed = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TextInputPrompt) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}
	return promptTitleStyle.Render("? "+m.title) + "\n" +
		m.input.View() + "\n" +
		promptDimStyle.Render("  enter to confirm • esc to cancel")
}

// Value returns the entered text and whether it was confirmed.
func (m TextInputPrompt) Value() (string, bool) {
	return strings.TrimSpace(m.input.Value()), m.confirmed && !m.cancelled
}

// Ask prompts for a line of text. ok is false when the user cancels.
func Ask(title, defaultVal string) (value string, ok bool, err error) {
	model, err := tea.NewProgram(NewTextInputPrompt(title, defaultVal)).Run()
	if err != nil {
		return "", false, fmt.Errorf("text prompt failed: %w", err)
	}
	value, ok = model.(TextInputPrompt).Value()
	return value, ok, nil
}
