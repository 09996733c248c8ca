package summarizer

import "context"

// Summarizer turns a normalized transcript into one summary document.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, req Request) (Result, error)
}

// Request carries the per-run settings.
type Request struct {
	// Prompt selects the instruction template.
	Prompt int
	// Model is the completion model identifier.
	Model string
	// Limit is the chunk budget in characters; <= 0 means chunk.DefaultLimit.
	Limit int
	// RunID tags log lines. A random one is generated when empty.
	RunID string
}

// Outcome tells a caller how to render a successful Result.
type Outcome int

const (
	// Summarized means Text holds the model's answer.
	Summarized Outcome = iota
	// NoContent means the transcript was empty and no exchange happened.
	NoContent
	// EmptyResponse means every exchange succeeded but returned no text.
	EmptyResponse
)

func (o Outcome) String() string {
	switch o {
	case Summarized:
		return "summarized"
	case NoContent:
		return "no-content"
	case EmptyResponse:
		return "empty-response"
	default:
		return "unknown"
	}
}

// Diagnostics rendered in place of a summary.
const (
	NoContentMessage     = "No content could be extracted from the captions; nothing to summarize."
	EmptyResponseMessage = "The completion API returned an empty response. This may indicate quota limits or content filtering."
)

// Result is a finished summarization run.
type Result struct {
	Text    string
	Outcome Outcome
	// Chunks is the number of exchanges issued.
	Chunks int
}

// Render returns the text to hand to a writer: the summary itself, or a
// diagnostic when there is none.
func (r Result) Render() string {
	switch r.Outcome {
	case NoContent:
		return NoContentMessage
	case EmptyResponse:
		return EmptyResponseMessage
	default:
		return r.Text
	}
}
