package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/advisor/internal/advisor"
)

func noticeColor(kind advisor.NoticeKind) lipgloss.Color {
	switch kind {
	case advisor.NoticeSuccess:
		return Secondary
	case advisor.NoticeWarning:
		return Warning
	case advisor.NoticeError:
		return Error
	default:
		return Info
	}
}

// RenderToast renders the visible notification, or "" when there is none.
func RenderToast(n *advisor.Notification, maxWidth int) string {
	if n == nil {
		return ""
	}
	color := noticeColor(n.Kind)
	text := lipgloss.NewStyle().Foreground(color).Background(Surface).Render(n.Text)
	closer := lipgloss.NewStyle().Foreground(Muted).Background(Surface).Render("  ✕ ctrl+x")

	style := ToastStyle.BorderForeground(color)
	if w := lipgloss.Width(n.Text) + lipgloss.Width("  ✕ ctrl+x") + style.GetHorizontalFrameSize(); w > maxWidth && maxWidth > 0 {
		style = style.Width(maxWidth - style.GetHorizontalBorderSize())
	}
	return style.Render(text + closer)
}
