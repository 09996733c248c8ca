// Package metrics records summarization pipeline activity through the
// OpenTelemetry Metrics API. Without an installed SDK the global meter
// provider is a no-op.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/nguyentantai21042004/caption-digest"

// Exchange statuses.
const (
	StatusOK    = "ok"
	StatusEmpty = "empty"
	StatusError = "error"
)

// Metrics holds the pipeline instruments. Safe for concurrent use.
type Metrics struct {
	// Exchanges counts completion API exchanges by status.
	Exchanges metric.Int64Counter

	// Chunks counts transcript chunks submitted on the long path.
	Chunks metric.Int64Counter

	// ExchangeDuration tracks exchange latency in seconds.
	ExchangeDuration metric.Float64Histogram

	// TranscriptChars tracks normalized transcript length in characters.
	TranscriptChars metric.Int64Histogram

	// Runs counts pipeline runs by source kind and outcome.
	Runs metric.Int64Counter
}

// New creates instruments from mp. A nil mp uses the global provider.
func New(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)

	var (
		m   Metrics
		err error
	)
	if m.Exchanges, err = meter.Int64Counter("digest.exchanges",
		metric.WithDescription("Completion API exchanges by status")); err != nil {
		return nil, err
	}
	if m.Chunks, err = meter.Int64Counter("digest.chunks",
		metric.WithDescription("Transcript chunks submitted")); err != nil {
		return nil, err
	}
	if m.ExchangeDuration, err = meter.Float64Histogram("digest.exchange.duration",
		metric.WithDescription("Completion API exchange latency"),
		metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if m.TranscriptChars, err = meter.Int64Histogram("digest.transcript.chars",
		metric.WithDescription("Normalized transcript length")); err != nil {
		return nil, err
	}
	if m.Runs, err = meter.Int64Counter("digest.runs",
		metric.WithDescription("Pipeline runs by source and outcome")); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordExchange records one finished exchange.
func (m *Metrics) RecordExchange(ctx context.Context, provider, status string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("status", status),
	)
	m.Exchanges.Add(ctx, 1, attrs)
	m.ExchangeDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordChunks records n chunks planned for one run.
func (m *Metrics) RecordChunks(ctx context.Context, n int) {
	if m == nil {
		return
	}
	m.Chunks.Add(ctx, int64(n))
}

// RecordTranscript records the length of a normalized transcript.
func (m *Metrics) RecordTranscript(ctx context.Context, chars int) {
	if m == nil {
		return
	}
	m.TranscriptChars.Record(ctx, int64(chars))
}

// RecordRun records one finished pipeline run. source is "url" or "file";
// outcome is a summarizer outcome or "failed".
func (m *Metrics) RecordRun(ctx context.Context, source, outcome string) {
	if m == nil {
		return
	}
	m.Runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("outcome", outcome),
	))
}
