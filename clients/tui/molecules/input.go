// Package molecules provides mid-level TUI components.
package molecules

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Placeholders of the two views.
const (
	PlaceholderLanding = "Pregunta sin problema."
	PlaceholderChat    = "Escribe tu pregunta aquí..."
)

// SubmitMsg is sent when the user presses Enter on non-blank input.
type SubmitMsg struct {
	Content string
}

// QuestionInput wraps a textarea with Enter-to-submit semantics.
// Alt+Enter inserts a newline.
type QuestionInput struct {
	textarea textarea.Model
	enabled  bool
}

// NewQuestionInput creates an enabled, focused input.
func NewQuestionInput() QuestionInput {
	ta := textarea.New()
	ta.Placeholder = PlaceholderLanding
	ta.Prompt = "› "
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	return QuestionInput{textarea: ta, enabled: true}
}

// SetWidth sets the input width.
func (q *QuestionInput) SetWidth(w int) {
	q.textarea.SetWidth(w)
}

// SetPlaceholder changes the hint shown on empty input.
func (q *QuestionInput) SetPlaceholder(p string) {
	q.textarea.Placeholder = p
}

// SetEnabled enables or disables the input. A disabled input ignores keys.
func (q *QuestionInput) SetEnabled(enabled bool) {
	q.enabled = enabled
	if enabled {
		q.textarea.Focus()
	} else {
		q.textarea.Blur()
	}
}

// Enabled returns whether the input accepts keys.
func (q *QuestionInput) Enabled() bool {
	return q.enabled
}

// Focus gives focus to the input if it is enabled.
func (q *QuestionInput) Focus() {
	if q.enabled {
		q.textarea.Focus()
	}
}

// Blur removes focus from the input.
func (q *QuestionInput) Blur() {
	q.textarea.Blur()
}

// Focused reports whether the input has focus.
func (q *QuestionInput) Focused() bool {
	return q.textarea.Focused()
}

// SetValue replaces the input text.
func (q *QuestionInput) SetValue(s string) {
	q.textarea.SetValue(s)
	q.fitHeight()
}

// Value returns the current input text.
func (q *QuestionInput) Value() string {
	return q.textarea.Value()
}

// Update handles key events.
func (q QuestionInput) Update(msg tea.Msg) (QuestionInput, tea.Cmd) {
	if !q.enabled {
		return q, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if keyMsg.Alt {
			q.textarea.InsertString("\n")
			q.fitHeight()
			return q, nil
		}
		content := strings.TrimSpace(q.textarea.Value())
		if content == "" {
			return q, nil
		}
		return q, func() tea.Msg { return SubmitMsg{Content: content} }
	}

	var cmd tea.Cmd
	q.textarea, cmd = q.textarea.Update(msg)
	q.fitHeight()
	return q, cmd
}

// fitHeight grows the textarea with its content, up to four lines.
func (q *QuestionInput) fitHeight() {
	q.textarea.SetHeight(min(max(q.textarea.LineCount(), 1), 4))
}

// View renders the input area.
func (q QuestionInput) View() string {
	return q.textarea.View()
}
