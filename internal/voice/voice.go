// Package voice provides the microphone capability of the advisor.
//
// Only a scripted mock exists: it waits, then "hears" one of a fixed set of
// storefront questions. A real speech-to-text backend plugs in by
// implementing Input.
package voice

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// ErrNoSpeech means the capture finished without an utterance.
var ErrNoSpeech = errors.New("no speech captured")

// Input captures one spoken utterance.
type Input interface {
	Capture(ctx context.Context) (string, error)
}

// Queries is the closed set of utterances the mock can produce.
var Queries = []string{
	"¿Qué televisores Samsung tienen disponibles?",
	"¿Cuáles son los mejores refrigeradores?",
	"¿Tienen notebooks para gaming?",
	"Busco un celular iPhone",
	"¿Qué lavadoras recomiendan?",
}

// Mock simulates listening for Delay and returns a random canned query.
type Mock struct {
	Delay   time.Duration
	Queries []string
	rnd     *rand.Rand
}

// NewMock returns a mock over Queries.
func NewMock(delay time.Duration) *Mock {
	return &Mock{Delay: delay, Queries: Queries}
}

// NewSeededMock returns a mock with a deterministic choice sequence.
func NewSeededMock(delay time.Duration, seed uint64) *Mock {
	m := NewMock(delay)
	m.rnd = rand.New(rand.NewPCG(seed, seed))
	return m
}

// Capture blocks for the configured delay unless ctx ends first.
func (m *Mock) Capture(ctx context.Context) (string, error) {
	timer := time.NewTimer(m.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	if len(m.Queries) == 0 {
		return "", ErrNoSpeech
	}
	return m.Queries[m.intN(len(m.Queries))], nil
}

func (m *Mock) intN(n int) int {
	if m.rnd != nil {
		return m.rnd.IntN(n)
	}
	return rand.IntN(n)
}
