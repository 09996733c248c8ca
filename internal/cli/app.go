package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/downloader"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/metrics"
	"github.com/nguyentantai21042004/caption-digest/internal/output"
	"github.com/nguyentantai21042004/caption-digest/internal/processor"
	"github.com/nguyentantai21042004/caption-digest/internal/prompt"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
	"github.com/nguyentantai21042004/caption-digest/internal/transcriber"
	"github.com/nguyentantai21042004/caption-digest/pkg/executor"
)

// app wires one processor from a config.
type app struct {
	cfg        *config.Config
	logger     logger.Logger
	progress   *transcriber.Progress
	downloader downloader.Downloader
	processor  processor.Processor
}

// newApp builds the pipeline. With stream set, model output is echoed to
// stdout as it arrives.
func newApp(ctx context.Context, cfg *config.Config, stream bool) (*app, error) {
	log := logger.New(cfg.Logging.Level)

	var progress *transcriber.Progress
	if stream {
		progress = transcriber.NewProgress(os.Stdout)
	}

	tr, err := transcriber.New(ctx, cfg, progress, log)
	if err != nil {
		progress.Close()
		return nil, fmt.Errorf("create transcriber: %w", err)
	}

	m, err := metrics.New(nil)
	if err != nil {
		progress.Close()
		return nil, fmt.Errorf("create metrics: %w", err)
	}

	opts := []summarizer.Option{summarizer.WithMetrics(m, cfg.Provider)}
	if cfg.Summary.ChunkPrompt != nil {
		opts = append(opts, summarizer.WithChunkPrompt(*cfg.Summary.ChunkPrompt))
	}
	sum := summarizer.New(prompt.FromConfig(cfg.Summary.Prompts), tr, log, opts...)
	dl := downloader.New(cfg.Downloader, executor.New(), log)
	w := output.New(cfg.Paths.Output, cfg.Output.Format, log)

	return &app{
		cfg:        cfg,
		logger:     log,
		progress:   progress,
		downloader: dl,
		processor:  processor.New(cfg, dl, sum, w, m, log),
	}, nil
}

// checkDownloader logs the downloader version, or warns when the binary
// cannot be run at all.
func (a *app) checkDownloader(ctx context.Context) {
	v, err := a.downloader.Version(ctx)
	if err != nil {
		a.logger.Warn(ctx, "%s is not runnable: %v", a.cfg.Downloader.Binary, err)
		return
	}
	a.logger.Debug(ctx, "Using %s %s", a.cfg.Downloader.Binary, v)
}

// close flushes streamed output.
func (a *app) close(ctx context.Context) {
	a.progress.Close()
	if n := a.progress.Dropped(); n > 0 {
		a.logger.Warn(ctx, "%d streamed fragments were not echoed; the written summary is complete", n)
	}
}
