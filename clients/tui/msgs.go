package tui

import "github.com/dohr-michael/advisor/internal/agent"

// replyMsg carries the outcome of one exchange back into the update loop.
type replyMsg struct {
	Outcome agent.Outcome
}

// voiceResultMsg ends a voice capture.
type voiceResultMsg struct {
	Text string
	Err  error
}

// voiceSubmitMsg submits a captured utterance after the submit delay.
type voiceSubmitMsg struct {
	Text string
}

// expireMsg ends the lifetime of the notification with ID.
type expireMsg struct {
	ID uint64
}
