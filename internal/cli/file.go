package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file <caption.vtt>...",
	Short: "Summarize local WebVTT caption files",
	Long: `Summarize one or more WebVTT files already on disk. The files are left
in place. With several files, up to performance.max_concurrent run at once
and streamed output is not echoed.

Examples:
  digest file talk.en.vtt
  digest file --format docx data/input/*.vtt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFile,
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg, len(args) == 1)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		rep, err := a.processor.ProcessFile(ctx, args[0])
		a.close(ctx)
		if err != nil {
			printFailure(os.Stderr, rep, err)
			return errReported{err}
		}
		printReport(os.Stderr, rep)
		return nil
	}

	reports, err := a.processor.ProcessFiles(ctx, args)
	a.close(ctx)
	for _, rep := range reports {
		switch {
		case rep.Diagnostic != "":
			printFailure(os.Stderr, rep, nil)
		case len(rep.Paths) > 0:
			printReport(os.Stderr, rep)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, red.Sprint(err.Error()))
		return errReported{err}
	}
	return nil
}
