package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/caption-digest/internal/caption"
	"github.com/nguyentantai21042004/caption-digest/internal/chunk"
	"github.com/nguyentantai21042004/caption-digest/internal/downloader"
	"github.com/nguyentantai21042004/caption-digest/internal/output"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

// ProcessURL orchestrates download, normalization, summarization and writing
// for one video.
func (p *implProcessor) ProcessURL(ctx context.Context, url string) (rep Report, err error) {
	rep = Report{RunID: newRunID(), Source: url}
	startTime := time.Now()
	defer func() { p.recordRun(ctx, "url", rep, err) }()

	p.logger.Info(ctx, "[%s] Starting: %s", rep.RunID, url)

	id, err := downloader.VideoID(url)
	if err != nil {
		return rep, err
	}
	rep.VideoID = id

	var transcript string
	track, err := p.downloader.Download(ctx, url)
	switch {
	case err == nil:
		defer p.cleanupTrack(ctx, track)
		transcript, err = caption.NormalizeFile(track.Path)
		var fe *caption.FormatError
		if errors.As(err, &fe) {
			return rep, fmt.Errorf("normalize captions: %w", err)
		}
		if err != nil {
			p.logger.Warn(ctx, "[%s] %v", rep.RunID, err)
		}
	case errors.Is(err, downloader.ErrNoCaptions):
		p.logger.Warn(ctx, "[%s] No captions for %s", rep.RunID, id)
	default:
		var pe *downloader.ProcessError
		if errors.As(err, &pe) {
			return p.fail(ctx, rep, pe.Diagnostic(), err)
		}
		return rep, fmt.Errorf("download captions: %w", err)
	}

	rep, err = p.summarize(ctx, rep, transcript)
	if err == nil {
		p.logger.Info(ctx, "[%s] Completed in %s", rep.RunID, time.Since(startTime))
	}
	return rep, err
}

// ProcessFile summarizes an existing caption file.
func (p *implProcessor) ProcessFile(ctx context.Context, path string) (rep Report, err error) {
	rep = Report{RunID: newRunID(), Source: path, VideoID: videoIDFromPath(path)}
	startTime := time.Now()
	defer func() { p.recordRun(ctx, "file", rep, err) }()

	p.logger.Info(ctx, "[%s] Starting: %s", rep.RunID, path)

	f, err := os.Open(path)
	if err != nil {
		return rep, fmt.Errorf("open captions: %w", err)
	}
	transcript, err := caption.Normalize(f)
	f.Close()
	if err != nil {
		var fe *caption.FormatError
		if errors.As(err, &fe) {
			fe.Source = path
		}
		return rep, fmt.Errorf("normalize captions: %w", err)
	}

	rep, err = p.summarize(ctx, rep, transcript)
	if err == nil {
		p.logger.Info(ctx, "[%s] Completed in %s", rep.RunID, time.Since(startTime))
	}
	return rep, err
}

// ProcessFiles runs independent ProcessFile calls; one failure does not stop
// the others. The returned error joins every failure.
func (p *implProcessor) ProcessFiles(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(max(p.cfg.Performance.MaxConcurrent, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			rep, err := p.ProcessFile(ctx, path)
			reports[i] = rep
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return reports, errors.Join(errs...)
}

func (p *implProcessor) summarize(ctx context.Context, rep Report, transcript string) (Report, error) {
	p.logger.Info(ctx, "[%s] Transcript: %d characters", rep.RunID, chunk.Len(transcript))

	req := summarizer.Request{
		Prompt: p.cfg.Summary.Prompt,
		Model:  p.cfg.Model(),
		Limit:  p.cfg.Summary.ChunkLimit,
		RunID:  rep.RunID,
	}

	res, err := p.summarizer.Summarize(ctx, transcript, req)
	if err != nil {
		var se *summarizer.Error
		if errors.As(err, &se) {
			return p.fail(ctx, rep, se.Guidance(), err)
		}
		return rep, fmt.Errorf("summarize: %w", err)
	}
	rep.Result = res

	if res.Outcome != summarizer.Summarized {
		p.logger.Warn(ctx, "[%s] %s", rep.RunID, res.Render())
	}

	paths, err := p.writer.Write(ctx, output.Document{
		VideoID:  rep.VideoID,
		Title:    "Summary of " + rep.VideoID,
		Markdown: res.Render(),
	})
	rep.Paths = paths
	if err != nil {
		return rep, fmt.Errorf("write summary: %w", err)
	}
	return rep, nil
}

// fail records diagnostic on rep and, when configured, writes it in place of
// the summary. cause is always returned.
func (p *implProcessor) fail(ctx context.Context, rep Report, diagnostic string, cause error) (Report, error) {
	rep.Diagnostic = diagnostic
	p.logger.Error(ctx, "[%s] %v", rep.RunID, cause)

	if !p.cfg.WritesDiagnostics() || rep.VideoID == "" {
		return rep, cause
	}

	paths, err := p.writer.Write(ctx, output.Document{
		VideoID:  rep.VideoID,
		Title:    "Summary of " + rep.VideoID,
		Markdown: diagnostic,
	})
	rep.Paths = paths
	if err != nil {
		p.logger.Warn(ctx, "[%s] Failed to write diagnostic: %v", rep.RunID, err)
	}
	return rep, cause
}

func (p *implProcessor) recordRun(ctx context.Context, source string, rep Report, err error) {
	outcome := rep.Result.Outcome.String()
	if err != nil {
		outcome = "failed"
	}
	p.metrics.RecordRun(ctx, source, outcome)
}

func newRunID() string {
	return uuid.NewString()[:8]
}

// reLanguageTag matches a BCP-47 style tag as yt-dlp appends it: en, pt-BR,
// zh-Hans, es-419.
var reLanguageTag = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]{2,8})*$`)

// videoIDFromPath strips the directory, the .vtt extension and a trailing
// language tag: data/input/dQw4w9WgXcQ.en.vtt -> dQw4w9WgXcQ. Other dotted
// segments are part of the name.
func videoIDFromPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.LastIndex(name, "."); i > 0 && reLanguageTag.MatchString(name[i+1:]) {
		name = name[:i]
	}
	return name
}
