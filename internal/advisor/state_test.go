package advisor

import (
	"errors"
	"testing"
	"time"

	"github.com/dohr-michael/advisor/internal/agent"
)

var now = time.Date(2026, 10, 15, 14, 30, 5, 0, time.UTC)

func TestNew_StartsOnLanding(t *testing.T) {
	s := New(Policy{})
	if s.View != ViewLanding {
		t.Errorf("expected landing view, got %s", s.View)
	}
	if s.Transcript.Len() != 0 || s.Loading() || s.Listening || s.Notification != nil {
		t.Errorf("expected empty initial state, got %+v", s)
	}
}

func TestSubmit_BlankIsNoop(t *testing.T) {
	s := New(Policy{}).SetInput("   ")

	for _, in := range []string{"", "  ", "\n", "\t \n"} {
		next, utterance, ok := s.Submit(in, now)
		if ok || utterance != "" {
			t.Errorf("Submit(%q) accepted", in)
		}
		if next.Transcript.Len() != 0 || next.Pending != 0 || next.View != ViewLanding || next.Input != "   " {
			t.Errorf("Submit(%q) changed state: %+v", in, next)
		}
	}
}

func TestSubmit_AppendsUserMessage(t *testing.T) {
	s := New(Policy{}).SetInput("  Busco un celular iPhone ")

	next, utterance, ok := s.Submit(s.Input, now)
	if !ok {
		t.Fatal("expected submission accepted")
	}
	if utterance != "Busco un celular iPhone" {
		t.Errorf("expected trimmed utterance, got %q", utterance)
	}
	if next.View != ViewChat {
		t.Error("expected switch to chat view")
	}
	if next.Input != "" {
		t.Errorf("expected input cleared, got %q", next.Input)
	}
	if !next.Loading() || next.Pending != 1 {
		t.Errorf("expected one pending exchange, got %d", next.Pending)
	}

	msgs := next.Transcript.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleUser || msgs[0].Text != utterance {
		t.Fatalf("unexpected transcript %+v", msgs)
	}
	if msgs[0].Timestamp() != "14:30:05" {
		t.Errorf("unexpected timestamp %q", msgs[0].Timestamp())
	}

	// The previous value is untouched.
	if s.Transcript.Len() != 0 || s.View != ViewLanding {
		t.Error("Submit mutated its receiver")
	}
}

func TestComplete_ExactlyOneAssistantMessage(t *testing.T) {
	tests := []struct {
		name       string
		out        agent.Outcome
		wantText   string
		wantNotice NoticeKind
	}{
		{"replied", agent.Outcome{Kind: agent.OutcomeReplied, Text: "Hola"}, "Hola", NoticeSuccess},
		{"no content", agent.Outcome{Kind: agent.OutcomeNoContent, Text: agent.FallbackNoContent, Err: agent.ErrNoContent}, agent.FallbackNoContent, NoticeSuccess},
		{"failed", agent.Outcome{Kind: agent.OutcomeFailed, Text: agent.FallbackCommunication, Err: errors.New("refused")}, agent.FallbackCommunication, NoticeError},
		{"failed without text", agent.Outcome{Kind: agent.OutcomeFailed}, agent.FallbackCommunication, NoticeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := New(Policy{}).Submit("hola", now)
			s = s.Complete(tt.out, now.Add(time.Second))

			msgs := s.Transcript.Messages()
			if len(msgs) != 2 {
				t.Fatalf("expected user + assistant, got %d messages", len(msgs))
			}
			if msgs[1].Role != RoleAssistant || msgs[1].Text != tt.wantText {
				t.Errorf("unexpected assistant message %+v", msgs[1])
			}
			if len(msgs[1].Products) != 0 {
				t.Errorf("gateway replies carry no products, got %v", msgs[1].Products)
			}
			if s.Loading() {
				t.Error("expected loading cleared")
			}
			if s.Notification == nil || s.Notification.Kind != tt.wantNotice {
				t.Errorf("expected %s notification, got %+v", tt.wantNotice, s.Notification)
			}
		})
	}
}

func TestOverlappingExchanges_CompletionOrder(t *testing.T) {
	s := New(Policy{})
	s, _, _ = s.Submit("primera", now)
	s, _, _ = s.Submit("segunda", now)
	if s.Pending != 2 {
		t.Fatalf("expected two pending exchanges, got %d", s.Pending)
	}

	// The second request finishes first.
	s = s.Complete(agent.Outcome{Text: "respuesta segunda"}, now)
	if !s.Loading() {
		t.Error("expected still loading with one exchange pending")
	}
	s = s.Complete(agent.Outcome{Text: "respuesta primera"}, now)
	if s.Loading() {
		t.Error("expected loading cleared")
	}

	var texts []string
	for _, m := range s.Transcript.Messages() {
		texts = append(texts, m.Text)
	}
	want := []string{"primera", "segunda", "respuesta segunda", "respuesta primera"}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("transcript = %v, want %v", texts, want)
		}
	}
}

func TestSubmit_SingleInFlightPolicy(t *testing.T) {
	s, _, _ := New(Policy{SingleInFlight: true}).Submit("primera", now)

	next, _, ok := s.Submit("segunda", now)
	if ok {
		t.Fatal("expected second submission rejected while pending")
	}
	if next.Transcript.Len() != 1 || next.Pending != 1 {
		t.Errorf("rejected submission changed transcript: %+v", next)
	}
	if next.Notification == nil || next.Notification.Kind != NoticeWarning {
		t.Errorf("expected warning notification, got %+v", next.Notification)
	}

	next = next.Complete(agent.Outcome{Text: "ok"}, now)
	if _, _, ok := next.Submit("segunda", now); !ok {
		t.Error("expected submission accepted once idle")
	}
}

func TestTranscript_IDsAreOrdered(t *testing.T) {
	s := New(Policy{})
	for i := 0; i < 20; i++ {
		s, _, _ = s.Submit("pregunta", now)
		s = s.Complete(agent.Outcome{Text: "respuesta"}, now)
	}

	msgs := s.Transcript.Messages()
	for i := 1; i < len(msgs); i++ {
		if msgs[i].ID.String() <= msgs[i-1].ID.String() {
			t.Fatalf("message %d id %s not after %s", i, msgs[i].ID, msgs[i-1].ID)
		}
	}
}

func TestTranscript_AppendDoesNotAlias(t *testing.T) {
	base := Transcript{}.Append(NewMessage(RoleUser, "a", now, nil))
	left := base.Append(NewMessage(RoleAssistant, "left", now, nil))
	right := base.Append(NewMessage(RoleAssistant, "right", now, nil))

	if base.Len() != 1 {
		t.Errorf("base grew to %d", base.Len())
	}
	if l, _ := left.Last(); l.Text != "left" {
		t.Errorf("left branch overwritten: %q", l.Text)
	}
	if r, _ := right.Last(); r.Text != "right" {
		t.Errorf("right branch overwritten: %q", r.Text)
	}

	msgs := left.Messages()
	msgs[0].Text = "mutated"
	if first := left.Messages()[0]; first.Text != "a" {
		t.Error("Messages exposed internal storage")
	}
}

func TestNotify_ReplacesAndExpires(t *testing.T) {
	s := New(Policy{}).Notify(NoticeInfo, "uno")
	first := s.Notification.ID

	s = s.Notify(NoticeError, "dos")
	if s.Notification.Text != "dos" || s.Notification.Kind != NoticeError {
		t.Fatalf("expected replacement, got %+v", s.Notification)
	}

	// The first toast's timer fires: the second stays.
	s = s.Expire(first)
	if s.Notification == nil || s.Notification.Text != "dos" {
		t.Fatal("stale expiry dismissed the newer notification")
	}

	s = s.Expire(s.Notification.ID)
	if s.Notification != nil {
		t.Error("expected notification expired")
	}
}

func TestDismiss(t *testing.T) {
	s := New(Policy{}).Notify(NoticeInfo, "x").Dismiss()
	if s.Notification != nil {
		t.Error("expected dismissed")
	}
}

func TestVoiceFlow(t *testing.T) {
	s, ok := New(Policy{}).StartListening()
	if !ok || !s.Listening {
		t.Fatal("expected listening")
	}
	if s.Notification == nil || s.Notification.Kind != NoticeInfo || s.Notification.Text != NoticeListening {
		t.Errorf("expected listening info, got %+v", s.Notification)
	}

	if _, ok := s.StartListening(); ok {
		t.Error("expected second trigger ignored while listening")
	}

	s = s.Captured("¿Qué lavadoras recomiendan?")
	if s.Listening {
		t.Error("expected listening cleared")
	}
	if s.Input != "¿Qué lavadoras recomiendan?" || s.View != ViewChat {
		t.Errorf("expected populated input on chat view, got %+v", s)
	}
	if s.Notification.Kind != NoticeSuccess || s.Notification.Text != NoticeCaptured {
		t.Errorf("expected capture success, got %+v", s.Notification)
	}

	s, _, ok = s.Submit(s.Input, now)
	if !ok || s.Input != "" || s.Transcript.Len() != 1 {
		t.Errorf("expected captured text submitted like typed input, got %+v", s)
	}
}

func TestCaptureFailed(t *testing.T) {
	s, _ := New(Policy{}).StartListening()
	s = s.CaptureFailed()
	if s.Listening || s.View != ViewLanding {
		t.Errorf("unexpected state %+v", s)
	}
	if s.Notification.Kind != NoticeWarning {
		t.Errorf("expected warning, got %+v", s.Notification)
	}
}

func TestBack_KeepsTranscript(t *testing.T) {
	s, _, _ := New(Policy{}).Submit("hola", now)
	s = s.Back()
	if s.View != ViewLanding || s.Transcript.Len() != 1 {
		t.Errorf("unexpected state after back: %+v", s)
	}
}

func TestProductActions(t *testing.T) {
	s := New(Policy{}).AddToCart()
	if s.Notification.Text != NoticeAddedToCart || s.Notification.Kind != NoticeSuccess {
		t.Errorf("unexpected %+v", s.Notification)
	}
	s = s.AddFavorite()
	if s.Notification.Text != NoticeAddedFavorite || s.Notification.Kind != NoticeInfo {
		t.Errorf("unexpected %+v", s.Notification)
	}
}
