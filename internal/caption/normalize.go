// Package caption turns WebVTT caption tracks into deduplicated prose.
//
// Two dialects are handled without a mode switch: plain cue files where
// timing lines sit between text lines, and auto-generated tracks where every
// word carries an inline <hh:mm:ss.mmm><c>...</c> timing tag.
package caption

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds a single caption line; cue text is never near this.
const maxLineSize = 1 << 20

var (
	reWordTiming = regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d{3}>|</?c>`)
	reTag        = regexp.MustCompile(`<[^>]*>`)
	reSpace      = regexp.MustCompile(`\s+`)
	reCueTiming  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}(\s.*)?$`)
	// a cue timing split across lines, or its arrow half
	reCueFragment = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}\.\d{3}( -->)?|--> \d{2}:\d{2}:\d{2}\.\d{3}(\s.*)?)$`)
)

var errInvalidUTF8 = errors.New("invalid UTF-8 text")

// Normalize reads a caption track and returns its text as one line of prose.
// Lines are cleaned of timing markup, headers and cue-timing lines are
// dropped, and exact repeats of an earlier line are removed. Surviving lines
// are joined with a single space in reading order.
func Normalize(r io.Reader) (string, error) {
	return normalize("input", r)
}

// NormalizeString is Normalize over an in-memory document.
func NormalizeString(raw string) (string, error) {
	return normalize("input", strings.NewReader(raw))
}

// NormalizeFile normalizes the caption file at path and removes it once it
// has been read. The file is removed even when normalization fails; a removal
// error is returned only if normalization itself succeeded.
func NormalizeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FormatError{Source: path, Err: err}
	}

	text, err := normalize(path, f)
	f.Close()

	if rmErr := os.Remove(path); rmErr != nil && err == nil {
		return text, fmt.Errorf("remove caption file: %w", rmErr)
	}
	return text, err
}

func normalize(source string, r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	seen := make(map[string]struct{})
	var kept []string

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			return "", &FormatError{Source: source, Line: lineNo, Err: errInvalidUTF8}
		}

		line := CleanLine(raw)
		if skipLine(line) {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		kept = append(kept, line)
	}
	if err := scanner.Err(); err != nil {
		return "", &FormatError{Source: source, Line: lineNo + 1, Err: err}
	}

	return strings.Join(kept, " "), nil
}

// CleanLine strips inline timing tags, markup and entity artifacts from one
// caption line and collapses its whitespace. A '<' left after markup removal
// is dropped too, so joined lines can never form a new tag.
func CleanLine(line string) string {
	line = strings.TrimPrefix(line, "\ufeff")
	line = reWordTiming.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "&nbsp;", " ")
	line = reTag.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "<", "")
	line = reSpace.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

// skipLine reports whether a cleaned line carries no transcript text.
func skipLine(line string) bool {
	switch {
	case line == "":
		return true
	case line == "WEBVTT" || strings.HasPrefix(line, "WEBVTT "):
		return true
	case strings.HasPrefix(line, "Kind:"), strings.HasPrefix(line, "Language:"):
		return true
	case reCueTiming.MatchString(line), reCueFragment.MatchString(line):
		return true
	}
	return false
}
