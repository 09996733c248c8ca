package summarizer

import (
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/metrics"
	"github.com/nguyentantai21042004/caption-digest/internal/prompt"
	"github.com/nguyentantai21042004/caption-digest/internal/transcriber"
)

type implSummarizer struct {
	catalog     *prompt.Catalog
	transcriber transcriber.Transcriber
	logger      logger.Logger
	metrics     *metrics.Metrics
	provider    string
	chunkPrompt *int
}

// Option configures a Summarizer.
type Option func(*implSummarizer)

// WithChunkPrompt makes the long path use selector instead of the request's
// prompt for every chunk.
func WithChunkPrompt(selector int) Option {
	return func(s *implSummarizer) {
		s.chunkPrompt = &selector
	}
}

// WithMetrics records exchanges on m, labelled with provider.
func WithMetrics(m *metrics.Metrics, provider string) Option {
	return func(s *implSummarizer) {
		s.metrics = m
		s.provider = provider
	}
}

// New creates a Summarizer that composes prompts from catalog and sends them
// through tr.
func New(catalog *prompt.Catalog, tr transcriber.Transcriber, log logger.Logger, opts ...Option) Summarizer {
	s := &implSummarizer{
		catalog:     catalog,
		transcriber: tr,
		logger:      log,
		provider:    "unknown",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
