package transcriber

import (
	"context"
	"fmt"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAI streams chat completions from the OpenAI API or any compatible
// endpoint.
type OpenAI struct {
	client oai.Client
	opts   *options
}

// NewOpenAI creates an OpenAI backend. SDK retries are disabled: a failed
// exchange is terminal for the run.
func NewOpenAI(apiKey string, opts ...Option) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key not provided")
	}

	o := buildOptions(opts)

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(o.baseURL))
	}
	if o.timeout > 0 {
		reqOpts = append(reqOpts, option.WithHTTPClient(&http.Client{
			Timeout: o.timeout,
		}))
	}

	return &OpenAI{
		client: oai.NewClient(reqOpts...),
		opts:   o,
	}, nil
}

// Transcribe implements Transcriber.
func (t *OpenAI) Transcribe(ctx context.Context, prompt, model string) (string, error) {
	t.opts.logger.Debug(ctx, "Sending message to OpenAI API, prompt length: %d", len(prompt))
	t.opts.logger.Debug(ctx, "Prompt preview: %s", preview(prompt, 500))

	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(prompt),
		},
	}

	stream := t.client.Chat.Completions.NewStreaming(ctx, params)
	if err := stream.Err(); err != nil {
		return "", &TransportError{Provider: "openai", Err: err}
	}

	deltas := make(chan delta)
	go func() {
		defer close(deltas)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			for _, choice := range chunk.Choices {
				if choice.Delta.Content == "" {
					continue
				}
				if !send(ctx, deltas, delta{text: choice.Delta.Content}) {
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			send(ctx, deltas, delta{err: err})
		}
	}()

	return collect(ctx, "openai", deltas, t.opts.progress, t.opts.logger)
}
