package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/caption-digest/internal/chunk"
	"github.com/nguyentantai21042004/caption-digest/internal/metrics"
)

// Summarize routes transcript through the empty, short or long path.
//
// Short: one exchange with template + " " + transcript.
// Long: the transcript is cut into chunks of at most req.Limit characters and
// each is sent as template + chunk in its own exchange, strictly one after
// another. Results are concatenated in chunk order with no separator. The
// first failure ends the run and no partial text is returned.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, req Request) (Result, error) {
	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()[:8]
	}

	limit := req.Limit
	if limit <= 0 {
		limit = chunk.DefaultLimit
	}

	size := chunk.Len(transcript)
	s.metrics.RecordTranscript(ctx, size)

	switch {
	case size == 0:
		s.logger.Warn(ctx, "[%s] No content extracted from captions, skipping summarization", runID)
		return Result{Text: NoContentMessage, Outcome: NoContent}, nil
	case size <= limit:
		return s.summarizeShort(ctx, runID, transcript, req)
	default:
		return s.summarizeLong(ctx, runID, transcript, req, limit)
	}
}

func (s *implSummarizer) summarizeShort(ctx context.Context, runID, transcript string, req Request) (Result, error) {
	tmpl, err := s.catalog.Template(req.Prompt)
	if err != nil {
		return Result{}, err
	}

	s.logger.Info(ctx, "[%s] Summarizing %d characters in a single exchange (model %s)", runID, chunk.Len(transcript), req.Model)

	text, err := s.exchange(ctx, runID, tmpl+" "+transcript, req.Model, 0, 1)
	if err != nil {
		return Result{}, err
	}
	return s.finish(ctx, runID, text, 1), nil
}

func (s *implSummarizer) summarizeLong(ctx context.Context, runID, transcript string, req Request, limit int) (Result, error) {
	selector := req.Prompt
	if s.chunkPrompt != nil {
		selector = *s.chunkPrompt
	}
	tmpl, err := s.catalog.Template(selector)
	if err != nil {
		return Result{}, err
	}

	chunks := chunk.Plan(transcript, limit)
	s.metrics.RecordChunks(ctx, len(chunks))
	s.logger.Info(ctx, "[%s] Transcript has %d characters, splitting into %d chunks of up to %d (model %s)",
		runID, chunk.Len(transcript), len(chunks), limit, req.Model)

	var buf strings.Builder
	for _, c := range chunks {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("summarize chunk %d/%d: %w", c.Index+1, len(chunks), err)
		}

		s.logger.Info(ctx, "[%s] Chunk %d/%d (%d characters)", runID, c.Index+1, len(chunks), c.Len())
		text, err := s.exchange(ctx, runID, tmpl+c.Text, req.Model, c.Index, len(chunks))
		if err != nil {
			return Result{}, err
		}
		buf.WriteString(text)
	}

	return s.finish(ctx, runID, buf.String(), len(chunks)), nil
}

// exchange runs one transcriber call and classifies its failure.
func (s *implSummarizer) exchange(ctx context.Context, runID, prompt, model string, index, total int) (string, error) {
	start := time.Now()
	text, err := s.transcriber.Transcribe(ctx, prompt, model)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.RecordExchange(ctx, s.provider, metrics.StatusError, elapsed)
		e := &Error{Kind: Classify(err), Chunk: index, Chunks: total, Err: err}
		s.logger.Error(ctx, "[%s] %s", runID, e.Guidance())
		return "", e
	}

	status := metrics.StatusOK
	if text == "" {
		status = metrics.StatusEmpty
	}
	s.metrics.RecordExchange(ctx, s.provider, status, elapsed)
	s.logger.Debug(ctx, "[%s] Exchange %d/%d finished in %s, %d bytes", runID, index+1, total, elapsed, len(text))
	return text, nil
}

func (s *implSummarizer) finish(ctx context.Context, runID, text string, chunks int) Result {
	if text == "" {
		s.logger.Warn(ctx, "[%s] Completion API returned an empty summary", runID)
		return Result{Outcome: EmptyResponse, Chunks: chunks}
	}
	return Result{Text: text, Outcome: Summarized, Chunks: chunks}
}
