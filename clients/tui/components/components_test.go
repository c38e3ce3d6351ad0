package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/advisor/internal/advisor"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"corto", 10, "corto"},
		{"Televisores y Audio", 10, "Televisor…"},
		{"Electrodomésticos", 6, "Elect…"},
		{"abc", 1, "…"},
	}
	for _, tt := range tests {
		got := TruncateString(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if lipgloss.Width(got) > max(tt.width, 1) {
			t.Errorf("TruncateString(%q, %d) too wide: %d", tt.in, tt.width, lipgloss.Width(got))
		}
	}
}

func TestSpaceBetween(t *testing.T) {
	if got := SpaceBetween("a", "b", 5); got != "a   b" {
		t.Errorf("unexpected layout %q", got)
	}
	if got := SpaceBetween("left", "right", 3); got != "left right" {
		t.Errorf("expected single space when too narrow, got %q", got)
	}
}

func TestLanding_FocusCycle(t *testing.T) {
	l := NewLanding(advisor.Suggestions)

	if !l.InputFocused() {
		t.Fatal("input should start focused")
	}
	for i := range advisor.Suggestions {
		l.FocusNext()
		s, ok := l.FocusedSuggestion()
		if !ok || s != advisor.Suggestions[i] {
			t.Errorf("step %d: expected card %q focused", i, advisor.Suggestions[i].Title)
		}
	}
	l.FocusNext()
	if !l.MicFocused() {
		t.Error("expected microphone after the cards")
	}
	l.FocusNext()
	if !l.InputFocused() {
		t.Error("focus should wrap to the input")
	}
	l.FocusPrev()
	if !l.MicFocused() {
		t.Error("shift+tab from input should reach the microphone")
	}
	l.ResetFocus()
	if !l.InputFocused() {
		t.Error("reset should focus the input")
	}
}

func TestRenderToast(t *testing.T) {
	if RenderToast(nil, 80) != "" {
		t.Error("no notification should render nothing")
	}
	out := RenderToast(&advisor.Notification{ID: 1, Kind: advisor.NoticeError, Text: advisor.NoticeFailed}, 80)
	if !strings.Contains(out, advisor.NoticeFailed) || !strings.Contains(out, "ctrl+x") {
		t.Errorf("unexpected toast %q", out)
	}
}

func TestRenderProducts(t *testing.T) {
	products := []advisor.Product{
		{Name: "LG InstaView 635 L", Price: "$7.499.900", OriginalPrice: "$8.999.900", Discount: "-17%", Badge: "Envío gratis"},
		{Name: "Samsung No Frost 394 L", Price: "$2.899.900"},
	}
	out := RenderProducts(products, 80)
	for _, want := range []string{"LG InstaView", "$7.499.900", "$8.999.900", "-17%", "Envío gratis", "Samsung No Frost"} {
		if !strings.Contains(out, want) {
			t.Errorf("products missing %q", want)
		}
	}
}

func TestChat_AutoScrollsOnAppend(t *testing.T) {
	c := NewChat()
	c.SetSize(60, 5)

	var tr advisor.Transcript
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	for i := range 20 {
		tr = tr.Append(advisor.NewMessage(advisor.RoleUser, fmt.Sprintf("pregunta %d", i), now, nil))
	}
	c.SetTranscript(tr.Messages())
	if !c.AtBottom() {
		t.Fatal("expected view at the newest message")
	}
	if !strings.Contains(c.View(), "pregunta 19") {
		t.Error("newest message not visible")
	}

	c.viewport.GotoTop()
	c.autoScroll = false
	tr = tr.Append(advisor.NewMessage(advisor.RoleUser, "pregunta nueva", now, nil))
	c.SetTranscript(tr.Messages())
	if !c.AtBottom() || !strings.Contains(c.View(), "pregunta nueva") {
		t.Error("append should scroll to the newest message")
	}
}

func TestChat_LatestProducts(t *testing.T) {
	c := NewChat()
	now := time.Now()
	p := []advisor.Product{{Name: "iPhone 15", Price: "$3.999.000"}}

	c.SetTranscript([]advisor.ChatMessage{
		advisor.NewMessage(advisor.RoleAssistant, "a", now, p),
		advisor.NewMessage(advisor.RoleUser, "b", now, nil),
	})
	if got := c.LatestProducts(); len(got) != 1 || got[0].Name != "iPhone 15" {
		t.Errorf("unexpected products %+v", got)
	}
}

func TestHeader_Status(t *testing.T) {
	h := NewHeader("http://localhost:8283")
	h.SetWidth(80)

	if !strings.Contains(h.View(), BrandName) {
		t.Error("brand missing")
	}
	h.SetStatus(true, 0, "*")
	if !strings.Contains(h.View(), "Escuchando") {
		t.Error("listening state missing")
	}
	h.SetStatus(false, 2, "*")
	if !strings.Contains(h.View(), "Consultando") {
		t.Error("pending state missing")
	}
}
