package output

import (
	"context"
	"time"
)

// Writer persists a rendered summary.
type Writer interface {
	// Write stores doc in the configured format(s) and returns the paths written.
	Write(ctx context.Context, doc Document) ([]string, error)
}

// Document is one summary ready to be written.
type Document struct {
	// VideoID names the source; it is embedded in the file name.
	VideoID string
	// Title heads the docx rendering. VideoID is used when empty.
	Title    string
	Markdown string
	// CreatedAt stamps the file name. Zero means time.Now.
	CreatedAt time.Time
}
