package downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/caption-digest/internal/caption"
	"github.com/nguyentantai21042004/caption-digest/pkg/executor"
)

var reVideoID = regexp.MustCompile(`(?i)[/|=]([\w-]{11})`)

// VideoID extracts the 11 character YouTube id from url.
func VideoID(url string) (string, error) {
	m := reVideoID.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("no video id in %q", url)
	}
	return m[1], nil
}

// Args returns the downloader command line for url, writing captions to
// <outputBase>.<lang>.vtt relative to the working directory.
func Args(url, lang, outputBase string) []string {
	return []string{
		"--write-sub",
		"--write-auto-sub",
		"--skip-download",
		"--sub-lang", lang,
		"--sub-format", "vtt",
		"--output", outputBase,
		url,
	}
}

func (d *implDownloader) Download(ctx context.Context, url string) (Track, error) {
	id, err := VideoID(url)
	if err != nil {
		return Track{}, err
	}

	dir, err := os.MkdirTemp(d.cfg.TempDir, "digest-"+id+"-*")
	if err != nil {
		return Track{}, fmt.Errorf("create temp dir: %w", err)
	}

	d.logger.Info(ctx, "Downloading captions (%s): %s", d.cfg.Language, url)

	if _, err := d.executor.ExecuteInDir(ctx, dir, d.cfg.Binary, Args(url, d.cfg.Language, id)...); err != nil {
		_ = os.RemoveAll(dir)
		if ctx.Err() != nil {
			return Track{}, ctx.Err()
		}
		return Track{}, processError(d.cfg.Binary, err)
	}

	path, err := caption.Find(filepath.Join(dir, id))
	if err != nil {
		_ = os.RemoveAll(dir)
		if errors.Is(err, os.ErrNotExist) {
			return Track{}, fmt.Errorf("%s: %w", id, ErrNoCaptions)
		}
		return Track{}, err
	}

	d.logger.Debug(ctx, "Caption track downloaded: %s", path)
	return Track{VideoID: id, Path: path, dir: dir}, nil
}

func (d *implDownloader) Version(ctx context.Context) (string, error) {
	out, err := d.executor.Execute(ctx, d.cfg.Binary, "--version")
	if err != nil {
		return "", processError(d.cfg.Binary, err)
	}
	return strings.TrimSpace(out), nil
}

// Cleanup removes the track's temp directory.
func (t Track) Cleanup() error {
	if t.dir == "" {
		return nil
	}
	return os.RemoveAll(t.dir)
}

func processError(binary string, err error) *ProcessError {
	pe := &ProcessError{Binary: binary, ExitCode: -1, Err: err}
	var execErr *executor.Error
	if errors.As(err, &execErr) {
		pe.ExitCode = execErr.ExitCode()
		pe.Stderr = execErr.Stderr
	}
	return pe
}
