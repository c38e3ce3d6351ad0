package components

// BrandName is the storefront name shown in the chat header.
const BrandName = "alkosto.ai"

// Header is the chat view top bar: back control, brand and status.
type Header struct {
	width     int
	endpoint  string
	listening bool
	pending   int
	frame     string
}

// NewHeader creates a header showing endpoint when idle.
func NewHeader(endpoint string) *Header {
	return &Header{endpoint: endpoint}
}

// SetWidth sets the component width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus updates the microphone and pending indicators. frame is the
// current spinner frame.
func (h *Header) SetStatus(listening bool, pending int, frame string) {
	h.listening = listening
	h.pending = pending
	h.frame = frame
}

// View renders the header.
func (h *Header) View() string {
	left := HeaderBackStyle.Render("← esc  ") + HeaderBrandStyle.Render(BrandName)

	var right string
	switch {
	case h.listening:
		right = HeaderStatusStyle.Render(h.frame + " Escuchando")
	case h.pending > 0:
		right = HeaderStatusStyle.Render(h.frame + " Consultando al agente")
	default:
		right = HeaderBackStyle.Render("🎤 ctrl+r  " + TruncateString(h.endpoint, max(h.width/3, 8)))
	}

	inner := h.width - HeaderStyle.GetHorizontalPadding()
	return HeaderStyle.Width(h.width).Render(SpaceBetween(left, right, inner))
}
