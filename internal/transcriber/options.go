package transcriber

import (
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

type options struct {
	baseURL  string
	timeout  time.Duration
	progress *Progress
	logger   logger.Logger
}

// Option configures a backend.
type Option func(*options)

// WithBaseURL overrides the API endpoint (OpenAI-compatible servers).
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithTimeout bounds each HTTP exchange.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithProgress forwards streamed text to p as it arrives.
func WithProgress(p *Progress) Option {
	return func(o *options) {
		o.progress = p
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) *options {
	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
