package output

import (
	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

type implWriter struct {
	dir    string
	format string
	logger logger.Logger
}

// New creates a Writer that stores summaries under dir. format is one of
// config.FormatMarkdown, config.FormatDocx or config.FormatBoth; anything
// else falls back to Markdown.
func New(dir, format string, log logger.Logger) Writer {
	switch format {
	case config.FormatMarkdown, config.FormatDocx, config.FormatBoth:
	default:
		format = config.FormatMarkdown
	}
	return &implWriter{
		dir:    dir,
		format: format,
		logger: log,
	}
}
