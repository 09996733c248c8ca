package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nguyentantai21042004/caption-digest/internal/downloader"
	"github.com/nguyentantai21042004/caption-digest/internal/processor"
	"github.com/nguyentantai21042004/caption-digest/internal/summarizer"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
)

// printReport summarizes a finished run for the terminal.
func printReport(w io.Writer, rep processor.Report) {
	fmt.Fprintln(w)
	switch rep.Result.Outcome {
	case summarizer.Summarized:
		green.Fprintf(w, "Summarized %s", rep.VideoID)
		fmt.Fprintf(w, " (%d chunk(s))\n", rep.Result.Chunks)
	default:
		yellow.Fprintln(w, rep.Result.Render())
	}
	for _, p := range rep.Paths {
		fmt.Fprintf(w, "  %s %s\n", bold.Sprint("Saved:"), p)
	}
}

// printFailure renders a failed run: its diagnostic in red, and where it was
// written, if anywhere.
func printFailure(w io.Writer, rep processor.Report, err error) {
	if rep.Diagnostic == "" {
		printError(w, err)
		return
	}
	fmt.Fprintln(w)
	red.Fprintln(w, rep.Diagnostic)
	for _, p := range rep.Paths {
		fmt.Fprintf(w, "  %s %s\n", bold.Sprint("Saved:"), p)
	}
}

func printError(w io.Writer, err error) {
	var se *summarizer.Error
	var pe *downloader.ProcessError
	switch {
	case errors.As(err, &se):
		fmt.Fprintln(w, red.Sprint(se.Guidance()))
	case errors.As(err, &pe):
		fmt.Fprintln(w, red.Sprint(pe.Diagnostic()))
	default:
		fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)
	}
}

// errReported marks a failure that has already been printed.
type errReported struct{ err error }

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }
