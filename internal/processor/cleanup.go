package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/caption-digest/internal/downloader"
)

// Archive moves a caption file from the input folder to the archived folder.
func (p *implProcessor) Archive(ctx context.Context, path string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return "", fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("move to archived: %w", err)
	}
	return dest, nil
}

// cleanupTrack removes a downloaded track's temp dir, logs warning if fails
func (p *implProcessor) cleanupTrack(ctx context.Context, track downloader.Track) {
	if err := track.Cleanup(); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", track.Dir(), err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp dir: %s", track.Dir())
	}
}
