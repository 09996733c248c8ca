package downloader

import (
	"errors"
	"fmt"
	"strings"
)

// diagnosticLines bounds how much process output a diagnostic carries.
const diagnosticLines = 20

// ErrNoCaptions means the download succeeded but produced no caption track,
// typically because the video has neither manual nor automatic captions in
// the requested language.
var ErrNoCaptions = errors.New("no captions available")

// ProcessError reports a downloader process that exited unsuccessfully. Its
// message is meant to be shown to the user as-is.
type ProcessError struct {
	Binary   string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s command failed with status: exit status %d", e.Binary, e.ExitCode)
	}
	return fmt.Sprintf("%s command failed: %v", e.Binary, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Diagnostic renders the error together with the last lines of the process
// output, for writing in place of a summary.
func (e *ProcessError) Diagnostic() string {
	if e.Stderr == "" {
		return e.Error()
	}
	return e.Error() + "\n\n```\n" + tail(e.Stderr, diagnosticLines) + "\n```\n"
}

func tail(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
