package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/caption-digest/internal/caption"
	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/downloader"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/output"
	"github.com/nguyentantai21042004/caption-digest/internal/prompt"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
	"github.com/nguyentantai21042004/caption-digest/internal/transcriber/mock"
)

const captions = `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:02.000
hello<00:00:00.500><c> world</c>

00:00:02.000 --> 00:00:04.000
hello world
`

type fakeDownloader struct {
	dir      string
	captions string
	err      error
	calls    int
}

func (f *fakeDownloader) Download(ctx context.Context, url string) (downloader.Track, error) {
	f.calls++
	if f.err != nil {
		return downloader.Track{}, f.err
	}
	id, err := downloader.VideoID(url)
	if err != nil {
		return downloader.Track{}, err
	}
	path := filepath.Join(f.dir, id+".en.vtt")
	if err := os.WriteFile(path, []byte(f.captions), 0644); err != nil {
		return downloader.Track{}, err
	}
	return downloader.Track{VideoID: id, Path: path}, nil
}

func (f *fakeDownloader) Version(ctx context.Context) (string, error) {
	return "test", nil
}

type fixture struct {
	cfg  *config.Config
	tr   *mock.Transcriber
	dl   *fakeDownloader
	proc Processor
}

func newFixture(t *testing.T, tr *mock.Transcriber, mutate ...func(*config.Config)) *fixture {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
		},
	}
	for _, m := range mutate {
		m(cfg)
	}
	require.NoError(t, cfg.Validate())

	dl := &fakeDownloader{dir: t.TempDir(), captions: captions}
	sum := summarizer.New(prompt.New("OUTLINE", "DETAILED", "PARTIAL"), tr, logger.Nop())
	w := output.New(cfg.Paths.Output, cfg.Output.Format, logger.Nop())

	return &fixture{
		cfg:  cfg,
		tr:   tr,
		dl:   dl,
		proc: New(cfg, dl, sum, w, nil, logger.Nop()),
	}
}

func readOnly(t *testing.T, paths []string) string {
	t.Helper()
	require.Len(t, paths, 1)
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	return string(data)
}

func TestProcessURL(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{Responses: []string{"# Hello"}})

	rep, err := f.proc.ProcessURL(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "dQw4w9WgXcQ", rep.VideoID)
	assert.Equal(t, summarizer.Summarized, rep.Result.Outcome)
	assert.Empty(t, rep.Diagnostic)
	assert.Equal(t, "# Hello", readOnly(t, rep.Paths))
	assert.Contains(t, filepath.Base(rep.Paths[0]), "_dQw4w9WgXcQ_")

	calls := f.tr.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "OUTLINE hello world", calls[0].Prompt)
	assert.Equal(t, f.cfg.Model(), calls[0].Model)

	_, err = os.Stat(filepath.Join(f.dl.dir, "dQw4w9WgXcQ.en.vtt"))
	assert.True(t, os.IsNotExist(err), "downloaded captions must be removed after reading")
}

func TestProcessURLProcessFailure(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{})
	f.dl.err = &downloader.ProcessError{Binary: "yt-dlp", ExitCode: 1, Err: errors.New("exit status 1")}

	rep, err := f.proc.ProcessURL(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)

	var pe *downloader.ProcessError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "yt-dlp command failed with status: exit status 1", rep.Diagnostic)
	assert.Equal(t, rep.Diagnostic, readOnly(t, rep.Paths))
	assert.Empty(t, f.tr.Calls())
}

func TestProcessURLNoCaptions(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{})
	f.dl.err = fmt.Errorf("dQw4w9WgXcQ: %w", downloader.ErrNoCaptions)

	rep, err := f.proc.ProcessURL(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, summarizer.NoContent, rep.Result.Outcome)
	assert.Equal(t, summarizer.NoContentMessage, readOnly(t, rep.Paths))
	assert.Empty(t, f.tr.Calls())
}

func TestProcessURLBadURL(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{})

	_, err := f.proc.ProcessURL(context.Background(), "nope")
	assert.Error(t, err)
	assert.Zero(t, f.dl.calls)
}

func TestProcessQuotaWritesGuidance(t *testing.T) {
	quota := errors.New(`POST "/v1/chat/completions": 429 Too Many Requests {"code":"insufficient_quota"}`)
	f := newFixture(t, &mock.Transcriber{Errs: []error{quota}})

	rep, err := f.proc.ProcessURL(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)

	var se *summarizer.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, summarizer.QuotaExceeded, se.Kind)
	assert.Contains(t, rep.Diagnostic, "billing")
	assert.Equal(t, rep.Diagnostic, readOnly(t, rep.Paths))
}

func TestProcessDiagnosticsDisabled(t *testing.T) {
	off := false
	f := newFixture(t, &mock.Transcriber{Errs: []error{errors.New("Incorrect API key provided")}},
		func(c *config.Config) { c.Output.WriteDiagnostics = &off })

	rep, err := f.proc.ProcessURL(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Contains(t, rep.Diagnostic, "api-keys")
	assert.Empty(t, rep.Paths)

	entries, _ := os.ReadDir(f.cfg.Paths.Output)
	assert.Empty(t, entries)
}

func TestProcessEmptyResponse(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{Responses: []string{""}})

	rep, err := f.proc.ProcessURL(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, summarizer.EmptyResponse, rep.Result.Outcome)
	assert.Equal(t, summarizer.EmptyResponseMessage, readOnly(t, rep.Paths))
}

func TestProcessFileKeepsSource(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{Responses: []string{"summary"}},
		func(c *config.Config) { c.Summary.Prompt = 1 })

	path := filepath.Join(t.TempDir(), "talk.en.vtt")
	require.NoError(t, os.WriteFile(path, []byte(captions), 0644))

	rep, err := f.proc.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "talk", rep.VideoID)
	assert.Equal(t, "summary", readOnly(t, rep.Paths))
	assert.Equal(t, "DETAILED hello world", f.tr.Calls()[0].Prompt)

	_, err = os.Stat(path)
	assert.NoError(t, err, "local caption files are not deleted")
}

func TestProcessFileInvalidUTF8(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{})

	path := filepath.Join(t.TempDir(), "bad.vtt")
	require.NoError(t, os.WriteFile(path, []byte("WEBVTT\n\nok\n\xff\xfe\n"), 0644))

	_, err := f.proc.ProcessFile(context.Background(), path)
	require.Error(t, err)

	var fe *caption.FormatError
	assert.True(t, errors.As(err, &fe))
	assert.Contains(t, err.Error(), path)
	assert.Empty(t, f.tr.Calls())
}

func TestProcessFiles(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{Responses: []string{"a", "b"}})

	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"one.vtt", "two.vtt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(captions), 0644))
		paths = append(paths, p)
	}
	paths = append(paths, filepath.Join(dir, "missing.vtt"))

	reports, err := f.proc.ProcessFiles(context.Background(), paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.vtt")
	require.Len(t, reports, 3)

	assert.Equal(t, "one", reports[0].VideoID)
	assert.Equal(t, "two", reports[1].VideoID)
	assert.Len(t, reports[0].Paths, 1)
	assert.Len(t, reports[1].Paths, 1)
	assert.Empty(t, reports[2].Paths)
	assert.Len(t, f.tr.Calls(), 2)
}

func TestArchive(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{})

	require.NoError(t, os.MkdirAll(f.cfg.Paths.Input, 0755))
	src := filepath.Join(f.cfg.Paths.Input, "talk.vtt")
	require.NoError(t, os.WriteFile(src, []byte(captions), 0644))

	dest, err := f.proc.Archive(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.cfg.Paths.Archived, "talk.vtt"), dest)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dest)
	assert.NoError(t, err)
}

func TestVideoIDFromPath(t *testing.T) {
	tests := map[string]string{
		"data/input/dQw4w9WgXcQ.en.vtt": "dQw4w9WgXcQ",
		"talk.vtt":                      "talk",
		"/tmp/a.b.en-US.vtt":            "a.b",
		"lecture.zh-Hans.vtt":           "lecture",
		"lecture.es-419.vtt":            "lecture",
		"my.talk.vtt":                   "my.talk",
		"v1.2.final.vtt":                "v1.2.final",
	}
	for in, want := range tests {
		assert.Equal(t, want, videoIDFromPath(in), in)
	}
}

func TestProcessFilesSameVideoTwoLanguages(t *testing.T) {
	f := newFixture(t, &mock.Transcriber{Responses: []string{"summary one", "summary two"}})

	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"talk.en.vtt", "talk.fr.vtt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(captions), 0644))
		paths = append(paths, p)
	}

	reports, err := f.proc.ProcessFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Len(t, reports[0].Paths, 1)
	require.Len(t, reports[1].Paths, 1)
	assert.NotEqual(t, reports[0].Paths[0], reports[1].Paths[0])

	entries, err := os.ReadDir(f.cfg.Paths.Output)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	var bodies []string
	for _, rep := range reports {
		bodies = append(bodies, readOnly(t, rep.Paths))
	}
	assert.ElementsMatch(t, []string{"summary one", "summary two"}, bodies)
}
