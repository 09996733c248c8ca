package processor

import (
	"context"

	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

// Processor runs the caption pipeline: fetch, normalize, summarize, write.
type Processor interface {
	// ProcessURL downloads the captions of a video and summarizes them.
	ProcessURL(ctx context.Context, url string) (Report, error)
	// ProcessFile summarizes a local caption file. The file is left in place.
	ProcessFile(ctx context.Context, path string) (Report, error)
	// ProcessFiles runs ProcessFile over paths, at most max_concurrent at a
	// time, and returns the reports in input order.
	ProcessFiles(ctx context.Context, paths []string) ([]Report, error)
	// Archive moves a processed caption file into the archived folder.
	Archive(ctx context.Context, path string) (string, error)
}

// Report describes one finished run.
type Report struct {
	RunID   string
	VideoID string
	Source  string
	Result  summarizer.Result
	// Diagnostic is the user-facing text for a failed run, empty on success.
	Diagnostic string
	// Paths lists the files written, summary or diagnostic.
	Paths []string
}
