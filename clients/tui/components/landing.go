package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/advisor/internal/advisor"
)

// Landing is the initial view: title, suggestion cards, microphone and input.
// Focus cycles over the input (0), the cards (1..n) and the microphone (n+1).
type Landing struct {
	width       int
	height      int
	focus       int
	suggestions []advisor.Suggestion
}

// NewLanding creates a landing view with the input focused.
func NewLanding(suggestions []advisor.Suggestion) *Landing {
	return &Landing{suggestions: suggestions}
}

// SetSize updates the component size.
func (l *Landing) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *Landing) slots() int { return len(l.suggestions) + 2 }

// FocusNext moves focus forward, wrapping around.
func (l *Landing) FocusNext() { l.focus = (l.focus + 1) % l.slots() }

// FocusPrev moves focus backward, wrapping around.
func (l *Landing) FocusPrev() { l.focus = (l.focus + l.slots() - 1) % l.slots() }

// ResetFocus gives focus back to the input.
func (l *Landing) ResetFocus() { l.focus = 0 }

// InputFocused reports whether the input has focus.
func (l *Landing) InputFocused() bool { return l.focus == 0 }

// MicFocused reports whether the microphone has focus.
func (l *Landing) MicFocused() bool { return l.focus == l.slots()-1 }

// FocusedSuggestion returns the suggestion under focus, if any.
func (l *Landing) FocusedSuggestion() (advisor.Suggestion, bool) {
	if l.focus < 1 || l.focus > len(l.suggestions) {
		return advisor.Suggestion{}, false
	}
	return l.suggestions[l.focus-1], true
}

// View renders the landing screen around the already rendered input.
func (l *Landing) View(input string, listening bool, frame string) string {
	title := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("¿Preguntas?"),
		SubtitleStyle.Render("Te asesoramos"),
	)

	cardWidth := 26
	if n := len(l.suggestions); n > 0 && l.width > 0 {
		cardWidth = min(cardWidth, max(l.width/n-4, 14))
	}
	cards := make([]string, 0, len(l.suggestions))
	for i, s := range l.suggestions {
		style := CardStyle
		if l.focus == i+1 {
			style = CardFocusedStyle
		}
		body := CardTitleStyle.Render(s.Title) + "\n" + CardSubtitleStyle.Render(s.Subtitle)
		cards = append(cards, style.Width(cardWidth).Render(body))
	}

	mic := MicStyle.Render("🎤 Buscar por voz")
	switch {
	case listening:
		mic = MicListeningStyle.Render(frame + " Escuchando...")
	case l.MicFocused():
		mic = MicFocusedStyle.Render("🎤 Buscar por voz")
	}

	hints := HintStyle.Render(strings.Join([]string{
		"tab cambiar foco", "enter seleccionar", "ctrl+r voz", "ctrl+c salir",
	}, " • "))

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		mic,
		"",
		input,
		"",
		hints,
	)
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, body)
}
