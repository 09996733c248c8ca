// Package transcriber runs single-turn streaming chat exchanges and returns
// the concatenated response text.
package transcriber

import (
	"context"
	"fmt"
)

// Transcriber submits one prompt as a single user message and returns the
// streamed answer. A successful exchange with no content returns "" and a
// nil error.
type Transcriber interface {
	Transcribe(ctx context.Context, prompt, model string) (string, error)
}

// TransportError reports a failed exchange. Partial is how many bytes had
// been accumulated when the failure happened; that text is discarded.
type TransportError struct {
	Provider string
	Partial  int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s stream failed after %d bytes: %v", e.Provider, e.Partial, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
