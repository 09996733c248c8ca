package transcriber

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Gemini streams content generation from the Gemini API.
type Gemini struct {
	client *genai.Client
	opts   *options
}

// NewGemini creates a Gemini backend.
func NewGemini(ctx context.Context, apiKey string, opts ...Option) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key not provided")
	}

	o := buildOptions(opts)

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if o.timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: o.timeout}
	}
	if o.baseURL != "" {
		cc.HTTPOptions.BaseURL = o.baseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Gemini{client: client, opts: o}, nil
}

// Transcribe implements Transcriber.
func (t *Gemini) Transcribe(ctx context.Context, prompt, model string) (string, error) {
	t.opts.logger.Debug(ctx, "Sending message to Gemini API, prompt length: %d", len(prompt))

	deltas := make(chan delta)
	go func() {
		defer close(deltas)

		for resp, err := range t.client.Models.GenerateContentStream(ctx, model, genai.Text(prompt), nil) {
			if err != nil {
				send(ctx, deltas, delta{err: err})
				return
			}
			text := responseText(resp)
			if text == "" {
				continue
			}
			if !send(ctx, deltas, delta{text: text}) {
				return
			}
		}
	}()

	return collect(ctx, "gemini", deltas, t.opts.progress, t.opts.logger)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text
}
