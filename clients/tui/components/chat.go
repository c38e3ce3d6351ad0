package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/advisor/clients/tui/atoms"
	"github.com/dohr-michael/advisor/internal/advisor"
)

// Chat is the scrollable transcript of the chat view.
type Chat struct {
	viewport viewport.Model
	messages []advisor.ChatMessage
	rendered []string // per message, valid for renderedWidth
	pending  int
	frame    string

	width         int
	height        int
	renderedWidth int
	ready         bool
	autoScroll    bool
}

// NewChat creates an empty transcript view.
func NewChat() *Chat {
	return &Chat{autoScroll: true}
}

// Update handles scrolling keys and the mouse wheel.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if !c.ready {
		return c, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup", "pgdown", "up", "down":
			c.viewport, cmd = c.viewport.Update(msg)
			c.autoScroll = c.viewport.AtBottom()
		}
	case tea.MouseMsg:
		c.viewport, cmd = c.viewport.Update(msg)
		c.autoScroll = c.viewport.AtBottom()
	}
	return c, cmd
}

// View renders the visible part of the transcript.
func (c *Chat) View() string {
	if !c.ready {
		return ""
	}
	return c.viewport.View()
}

// SetSize updates the component size.
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	if !c.ready {
		c.viewport = viewport.New(width, height)
		c.ready = true
	} else {
		c.viewport.Width = width
		c.viewport.Height = height
	}
	c.refresh()
}

// SetTranscript replaces the messages shown. Appended messages always scroll
// the view to the newest one.
func (c *Chat) SetTranscript(msgs []advisor.ChatMessage) {
	grew := len(msgs) > len(c.messages)
	c.messages = msgs
	if grew {
		c.autoScroll = true
	}
	c.refresh()
}

// SetTyping shows the typing indicator while pending > 0.
func (c *Chat) SetTyping(pending int, frame string) {
	if pending == c.pending && (pending == 0 || frame == c.frame) {
		return
	}
	c.pending = pending
	c.frame = frame
	c.refresh()
}

// AtBottom reports whether the newest content is in view.
func (c *Chat) AtBottom() bool {
	return !c.ready || c.viewport.AtBottom()
}

// LatestProducts returns the products of the newest message carrying any.
func (c *Chat) LatestProducts() []advisor.Product {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if len(c.messages[i].Products) > 0 {
			return c.messages[i].Products
		}
	}
	return nil
}

func (c *Chat) refresh() {
	if !c.ready {
		return
	}
	c.viewport.SetContent(c.renderContent())
	if c.autoScroll {
		c.viewport.GotoBottom()
	}
}

func (c *Chat) renderContent() string {
	if c.renderedWidth != c.width || len(c.rendered) > len(c.messages) {
		c.rendered = nil
		c.renderedWidth = c.width
	}
	for i := len(c.rendered); i < len(c.messages); i++ {
		c.rendered = append(c.rendered, c.renderMessage(c.messages[i]))
	}

	var b strings.Builder
	for i, r := range c.rendered {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(r)
	}

	if products := c.LatestProducts(); len(products) > 0 {
		b.WriteString("\n")
		b.WriteString(ProductHintStyle.Render("  ctrl+b agregar al carrito • ctrl+f favorito"))
	}

	if c.pending > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(c.frame + " " + TypingStyle.Render("El asesor está escribiendo..."))
	}
	return b.String()
}

func (c *Chat) renderMessage(m advisor.ChatMessage) string {
	var b strings.Builder
	textWidth := max(c.width-4, 10)

	switch m.Role {
	case advisor.RoleUser:
		b.WriteString(atoms.StyledLabel("❯ Tú", UserLabelStyle, m.Timestamp(), TimestampStyle))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(
			UserTextStyle.Width(textWidth).Render(m.Text)))
	default:
		b.WriteString(atoms.StyledLabel("◆ Asesor", AssistantLabelStyle, m.Timestamp(), TimestampStyle))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(RenderMarkdown(m.Text, textWidth)))
	}

	if len(m.Products) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(RenderProducts(m.Products, c.width-2)))
	}
	return b.String()
}

// RenderProducts lays out product cards in rows that fit width.
func RenderProducts(products []advisor.Product, width int) string {
	const cardWidth = 28

	perRow := max(width/(cardWidth+3), 1)
	var rows []string
	for start := 0; start < len(products); start += perRow {
		end := min(start+perRow, len(products))
		cards := make([]string, 0, end-start)
		for _, p := range products[start:end] {
			cards = append(cards, renderProduct(p, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderProduct(p advisor.Product, width int) string {
	lines := []string{ProductNameStyle.Render(TruncateString(p.Name, width))}

	price := ProductPriceStyle.Render(p.Price)
	if p.Discount != "" {
		price += " " + ProductDiscountStyle.Render(p.Discount)
	}
	lines = append(lines, price)
	if p.OriginalPrice != "" {
		lines = append(lines, ProductOldPriceStyle.Render(p.OriginalPrice))
	}
	if p.Badge != "" {
		lines = append(lines, ProductBadgeStyle.Render("🚚 "+p.Badge))
	}
	return ProductCardStyle.Width(width).Render(strings.Join(lines, "\n"))
}
