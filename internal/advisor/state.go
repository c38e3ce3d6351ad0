package advisor

import (
	"strings"
	"time"

	"github.com/dohr-michael/advisor/internal/agent"
)

// ViewMode selects the screen being rendered.
type ViewMode int

const (
	ViewLanding ViewMode = iota
	ViewChat
)

func (v ViewMode) String() string {
	if v == ViewChat {
		return "chat"
	}
	return "landing"
}

// Policy tunes how submissions are admitted.
type Policy struct {
	// SingleInFlight rejects a submission while another exchange is pending.
	// When false, exchanges overlap and replies land in completion order.
	SingleInFlight bool
}

// State is the full UI state of the advisor.
type State struct {
	View         ViewMode
	Input        string
	Pending      int // exchanges sent and not yet completed
	Listening    bool
	Notification *Notification // nil when no toast is visible
	Transcript   Transcript

	policy     Policy
	lastNotice uint64
}

// New returns the initial state: landing view, empty transcript.
func New(p Policy) State {
	return State{View: ViewLanding, policy: p}
}

// Loading reports whether any exchange is pending.
func (s State) Loading() bool { return s.Pending > 0 }

// SetInput replaces the input line.
func (s State) SetInput(text string) State {
	s.Input = text
	return s
}

// Submit admits a user utterance. Blank text is a no-op and ok is false.
// On success the user message is appended, the input is cleared, the view
// switches to chat and the returned utterance must be sent to the agent.
func (s State) Submit(text string, now time.Time) (next State, utterance string, ok bool) {
	utterance = strings.TrimSpace(text)
	if utterance == "" {
		return s, "", false
	}
	if s.policy.SingleInFlight && s.Pending > 0 {
		return s.Notify(NoticeWarning, NoticeBusy), "", false
	}

	s.View = ViewChat
	s.Transcript = s.Transcript.Append(NewMessage(RoleUser, utterance, now, nil))
	s.Input = ""
	s.Pending++
	return s, utterance, true
}

// Complete records the end of one exchange: exactly one assistant message is
// appended, whatever the outcome.
func (s State) Complete(out agent.Outcome, now time.Time) State {
	text := out.Text
	if text == "" {
		text = agent.FallbackCommunication
	}
	s.Transcript = s.Transcript.Append(NewMessage(RoleAssistant, text, now, nil))
	if s.Pending > 0 {
		s.Pending--
	}

	if out.Kind == agent.OutcomeFailed {
		return s.Notify(NoticeError, NoticeFailed)
	}
	return s.Notify(NoticeSuccess, NoticeReplied)
}

// Notify shows a notification, replacing any visible one.
func (s State) Notify(kind NoticeKind, text string) State {
	s.lastNotice++
	s.Notification = &Notification{ID: s.lastNotice, Kind: kind, Text: text}
	return s
}

// Expire dismisses the notification with the given ID if it is still visible.
func (s State) Expire(id uint64) State {
	if s.Notification != nil && s.Notification.ID == id {
		s.Notification = nil
	}
	return s
}

// Dismiss hides the visible notification.
func (s State) Dismiss() State {
	s.Notification = nil
	return s
}

// StartListening turns the microphone on. ok is false if it already is.
func (s State) StartListening() (next State, ok bool) {
	if s.Listening {
		return s, false
	}
	s.Listening = true
	return s.Notify(NoticeInfo, NoticeListening), true
}

// Captured ends listening with an utterance placed in the input line.
// The caller submits it after a short delay.
func (s State) Captured(utterance string) State {
	s.Listening = false
	s.Input = utterance
	s.View = ViewChat
	return s.Notify(NoticeSuccess, NoticeCaptured)
}

// CaptureFailed ends listening without an utterance.
func (s State) CaptureFailed() State {
	s.Listening = false
	return s.Notify(NoticeWarning, NoticeNotCaptured)
}

// Back returns to the landing view. The transcript is kept.
func (s State) Back() State {
	s.View = ViewLanding
	return s
}

// AddToCart acknowledges the buy action of a product card.
func (s State) AddToCart() State {
	return s.Notify(NoticeSuccess, NoticeAddedToCart)
}

// AddFavorite acknowledges the favourite action of a product card.
func (s State) AddFavorite() State {
	return s.Notify(NoticeInfo, NoticeAddedFavorite)
}
