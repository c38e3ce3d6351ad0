// Package tui is the terminal front end of the product advisor.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/advisor/clients/tui/components"
)

var (
	// inputBox frames the question input; the focused variant is brand colored.
	inputBox        = components.InputBorderStyle.Padding(0, 1)
	inputBoxFocused = components.InputFocusedBorderStyle.Padding(0, 1)

	quitStyle = lipgloss.NewStyle().Foreground(components.Brand)
)
