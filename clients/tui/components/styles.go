// Package components provides the views of the advisor screen and their styles.
package components

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

const (
	ColorBrand     = "#F97316" // Orange - brand, focus
	ColorPrimary   = "#2563EB" // Blue - user bubbles, links
	ColorSecondary = "#10B981" // Green - success, prices
	ColorWarning   = "#F59E0B" // Amber - warnings, badges
	ColorError     = "#EF4444" // Red - errors, discounts
	ColorInfo      = "#60A5FA" // Light blue - info, listening

	ColorMuted   = "#6B7280" // Gray - hints, timestamps
	ColorBorder  = "#374151" // Dark gray - borders
	ColorSurface = "#1E293B" // Slate - header, toast background

	ColorText       = "#E5E7EB"
	ColorTextBright = "#FFFFFF"
	ColorTextDim    = "#9CA3AF"
)

var (
	Brand      = lipgloss.Color(ColorBrand)
	Primary    = lipgloss.Color(ColorPrimary)
	Secondary  = lipgloss.Color(ColorSecondary)
	Warning    = lipgloss.Color(ColorWarning)
	Error      = lipgloss.Color(ColorError)
	Info       = lipgloss.Color(ColorInfo)
	Muted      = lipgloss.Color(ColorMuted)
	Border     = lipgloss.Color(ColorBorder)
	Surface    = lipgloss.Color(ColorSurface)
	Text       = lipgloss.Color(ColorText)
	TextBright = lipgloss.Color(ColorTextBright)
	TextDim    = lipgloss.Color(ColorTextDim)
)

// =============================================================================
// Transcript Styles
// =============================================================================

var (
	UserLabelStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	AssistantLabelStyle = lipgloss.NewStyle().
				Foreground(Brand).
				Bold(true)

	UserTextStyle = lipgloss.NewStyle().
			Foreground(TextBright)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(Muted)

	TypingStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)
)

// =============================================================================
// Product Card Styles
// =============================================================================

var (
	ProductCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Border).
				Padding(0, 1)

	ProductNameStyle = lipgloss.NewStyle().
				Foreground(Text).
				Bold(true)

	ProductPriceStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	ProductOldPriceStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Strikethrough(true)

	ProductDiscountStyle = lipgloss.NewStyle().
				Foreground(Error).
				Bold(true)

	ProductBadgeStyle = lipgloss.NewStyle().
				Foreground(Warning)

	ProductHintStyle = lipgloss.NewStyle().
				Foreground(Muted)
)

// =============================================================================
// Landing Styles
// =============================================================================

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextBright).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Brand).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	CardFocusedStyle = CardStyle.
				BorderForeground(Brand)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	CardSubtitleStyle = lipgloss.NewStyle().
				Foreground(TextDim)

	MicStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	MicFocusedStyle = MicStyle.
			BorderForeground(Brand)

	MicListeningStyle = MicStyle.
				BorderForeground(Info).
				Foreground(Info)

	HintStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// =============================================================================
// Header, Input and Toast Styles
// =============================================================================

var (
	HeaderStyle = lipgloss.NewStyle().
			Background(Surface).
			Foreground(Text).
			Padding(0, 1)

	HeaderBackStyle = lipgloss.NewStyle().
			Background(Surface).
			Foreground(TextDim)

	HeaderBrandStyle = lipgloss.NewStyle().
				Background(Surface).
				Foreground(Brand).
				Bold(true)

	HeaderStatusStyle = lipgloss.NewStyle().
				Background(Surface).
				Foreground(Info)

	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Border)

	InputFocusedBorderStyle = InputBorderStyle.
				BorderForeground(Brand)

	ToastStyle = lipgloss.NewStyle().
			Background(Surface).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())
)
