package summarizer

import (
	"fmt"
	"strings"
)

// Kind classifies a failed exchange.
type Kind int

const (
	Transport Kind = iota
	QuotaExceeded
	InvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case QuotaExceeded:
		return "quota exceeded"
	case InvalidCredentials:
		return "invalid credentials"
	default:
		return "transport error"
	}
}

// markers maps substrings of provider error text to a Kind. The strings come
// from the providers' wire errors and must be kept verbatim.
var markers = []struct {
	substr string
	kind   Kind
}{
	{"insufficient_quota", QuotaExceeded},
	{"exceeded your current quota", QuotaExceeded},
	{"RESOURCE_EXHAUSTED", QuotaExceeded},
	{"invalid_api_key", InvalidCredentials},
	{"Incorrect API key", InvalidCredentials},
	{"API_KEY_INVALID", InvalidCredentials},
}

// Classify maps an exchange failure to a Kind by inspecting its message.
func Classify(err error) Kind {
	if err == nil {
		return Transport
	}
	msg := err.Error()
	for _, m := range markers {
		if strings.Contains(msg, m.substr) {
			return m.kind
		}
	}
	return Transport
}

// Error is a classified exchange failure. Chunk is zero-based.
type Error struct {
	Kind   Kind
	Chunk  int
	Chunks int
	Err    error
}

func (e *Error) Error() string {
	if e.Chunks > 1 {
		return fmt.Sprintf("summarize chunk %d/%d: %s: %v", e.Chunk+1, e.Chunks, e.Kind, e.Err)
	}
	return fmt.Sprintf("summarize: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Guidance returns an actionable, user-facing description of the failure.
func (e *Error) Guidance() string {
	switch e.Kind {
	case QuotaExceeded:
		return "API quota exceeded. Please check your billing at https://platform.openai.com/account/billing"
	case InvalidCredentials:
		return "Invalid API key. Please check your API key at https://platform.openai.com/account/api-keys"
	default:
		return fmt.Sprintf("Failed to get a summary from the completion API: %v", e.Err)
	}
}
