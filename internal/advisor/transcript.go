// Package advisor holds the state of the product advisor screen: the
// transcript, the input line, pending exchanges, the microphone flag, the
// visible notification and the current view.
//
// State values are immutable from the caller's point of view; every
// transition returns a new State.
package advisor

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a ChatMessage.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Product is a display-only product card.
type Product struct {
	Name          string
	Price         string
	OriginalPrice string // empty when not discounted
	Discount      string // e.g. "-20%"
	Badge         string // e.g. "Envío gratis"
}

// ChatMessage is one transcript entry. It is never modified once appended.
type ChatMessage struct {
	ID       uuid.UUID // v7: time ordered
	Role     Role
	Text     string
	SentAt   time.Time
	Products []Product
}

// Timestamp is the clock time shown under the message.
func (m ChatMessage) Timestamp() string {
	return m.SentAt.Format("15:04:05")
}

// NewMessage builds a transcript entry with a fresh time-ordered ID.
func NewMessage(role Role, text string, now time.Time, products []Product) ChatMessage {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ChatMessage{
		ID:       id,
		Role:     role,
		Text:     text,
		SentAt:   now,
		Products: slices.Clone(products),
	}
}

// Transcript is an append-only ordered list of messages.
type Transcript struct {
	messages []ChatMessage
}

// Append returns a transcript with m at the end. The receiver is unchanged.
func (t Transcript) Append(m ChatMessage) Transcript {
	return Transcript{messages: append(slices.Clip(t.messages), m)}
}

// Len returns the number of messages.
func (t Transcript) Len() int { return len(t.messages) }

// Messages returns a copy of the messages in append order.
func (t Transcript) Messages() []ChatMessage {
	return slices.Clone(t.messages)
}

// Last returns the newest message, if any.
func (t Transcript) Last() (ChatMessage, bool) {
	if len(t.messages) == 0 {
		return ChatMessage{}, false
	}
	return t.messages[len(t.messages)-1], true
}
