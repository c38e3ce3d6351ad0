package agent

import (
	"errors"
	"fmt"
)

// User-visible replies substituted when the agent cannot be read.
const (
	FallbackNoContent     = "El agente respondió pero no pude extraer el contenido del mensaje."
	FallbackCommunication = "Lo siento, hay un problema de comunicación con el agente. Revisa la consola para más detalles."
)

var (
	// ErrEmptyUtterance is returned for blank input; no request is made.
	ErrEmptyUtterance = errors.New("empty utterance")

	// ErrNoContent means the response was well formed but carried no reply text.
	ErrNoContent = errors.New("no assistant content in response")
)

// TransportError wraps a failure to reach the agent or read its reply.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("agent transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string // truncated
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("agent responded HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("agent responded HTTP %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a 2xx body that is not a valid response document.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode agent response: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
