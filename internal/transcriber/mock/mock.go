// Package mock provides a test double for transcriber.Transcriber.
//
// Responses are served in call order; Errs[i], when non-nil, fails call i.
// Every call is recorded so tests can assert prompts and call counts.
package mock

import (
	"context"
	"sync"
)

// Call records one Transcribe invocation.
type Call struct {
	Prompt string
	Model  string
}

// Transcriber is a scripted transcriber.Transcriber.
type Transcriber struct {
	mu sync.Mutex

	// Responses is returned by call index. Calls past the end return "".
	Responses []string

	// Errs fails the call at the same index when non-nil.
	Errs []error

	calls []Call
}

// Transcribe implements transcriber.Transcriber.
func (m *Transcriber) Transcribe(ctx context.Context, prompt, model string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := len(m.calls)
	m.calls = append(m.calls, Call{Prompt: prompt, Model: model})

	if i < len(m.Errs) && m.Errs[i] != nil {
		return "", m.Errs[i]
	}
	if i < len(m.Responses) {
		return m.Responses[i], nil
	}
	return "", nil
}

// Calls returns a copy of the recorded calls.
func (m *Transcriber) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}
