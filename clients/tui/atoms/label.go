package atoms

import "github.com/charmbracelet/lipgloss"

// StyledLabel renders an author label followed by a dimmed timestamp.
func StyledLabel(author string, style lipgloss.Style, timestamp string, tsStyle lipgloss.Style) string {
	if timestamp == "" {
		return style.Render(author)
	}
	return style.Render(author) + " " + tsStyle.Render(timestamp)
}
