package output

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
)

// Filename returns YYYYMMDD_<videoID>_<unix>.md, dated in UTC.
func Filename(videoID string, t time.Time) string {
	return t.UTC().Format("20060102") + "_" + videoID + "_" + strconv.FormatInt(t.Unix(), 10) + ".md"
}

// maxSuffix bounds the _2, _3, ... suffixes tried when a name is taken.
const maxSuffix = 100

// Write never overwrites: when the dated name is already taken, for example by
// another track of the same video finishing in the same second, a numeric
// suffix is added.
func (w *implWriter) Write(ctx context.Context, doc Document) ([]string, error) {
	if doc.VideoID == "" {
		return nil, fmt.Errorf("write summary: empty video id")
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var exts []string
	if w.format == config.FormatMarkdown || w.format == config.FormatBoth {
		exts = append(exts, ".md")
	}
	if w.format == config.FormatDocx || w.format == config.FormatBoth {
		exts = append(exts, ".docx")
	}

	stem := strings.TrimSuffix(Filename(doc.VideoID, doc.CreatedAt), ".md")
	paths, err := reserve(w.dir, stem, exts)
	if err != nil {
		return nil, fmt.Errorf("reserve output name: %w", err)
	}

	var written []string
	for i, path := range paths {
		if err := w.writeOne(doc, path); err != nil {
			for _, p := range paths[i:] {
				_ = os.Remove(p)
			}
			return written, err
		}
		w.logger.Info(ctx, "Summary written: %s", path)
		written = append(written, path)
	}
	return written, nil
}

func (w *implWriter) writeOne(doc Document, path string) error {
	if filepath.Ext(path) == ".docx" {
		title := doc.Title
		if title == "" {
			title = doc.VideoID
		}
		if err := writeDocx(title, doc.Markdown, path); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(doc.Markdown), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// reserve creates an empty file per extension under the first free stem
// (stem, stem_2, stem_3, ...). O_EXCL keeps concurrent writers apart.
func reserve(dir, stem string, exts []string) ([]string, error) {
	for n := 1; n <= maxSuffix; n++ {
		candidate := stem
		if n > 1 {
			candidate = stem + "_" + strconv.Itoa(n)
		}
		paths, err := claim(dir, candidate, exts)
		if err == nil {
			return paths, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%s: all %d names taken", stem, maxSuffix)
}

func claim(dir, stem string, exts []string) ([]string, error) {
	paths := make([]string, 0, len(exts))
	for _, ext := range exts {
		p := filepath.Join(dir, stem+ext)
		f, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err != nil {
			for _, q := range paths {
				_ = os.Remove(q)
			}
			return nil, err
		}
		f.Close()
		paths = append(paths, p)
	}
	return paths, nil
}
