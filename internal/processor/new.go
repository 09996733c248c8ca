package processor

import (
	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/downloader"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/metrics"
	"github.com/nguyentantai21042004/caption-digest/internal/output"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	downloader downloader.Downloader
	summarizer summarizer.Summarizer
	writer     output.Writer
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// New creates a new Processor instance. m may be nil.
func New(cfg *config.Config, dl downloader.Downloader, sum summarizer.Summarizer, w output.Writer, m *metrics.Metrics, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		downloader: dl,
		summarizer: sum,
		writer:     w,
		metrics:    m,
		logger:     log,
	}
}
