package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>",
	Short: "Download a video's captions and summarize them",
	Long: `Download the caption track of a video with yt-dlp, normalize it and
stream a summary from the configured model. The summary is echoed while it
arrives and saved as YYYYMMDD_<videoid>_<unix>.md in the output folder.

Examples:
  digest summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ
  digest summarize -p 0 --limit 8000 https://youtu.be/dQw4w9WgXcQ`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return err
	}

	a.checkDownloader(ctx)
	rep, err := a.processor.ProcessURL(ctx, args[0])
	a.close(ctx)
	if err != nil {
		printFailure(os.Stderr, rep, err)
		return errReported{err}
	}

	printReport(os.Stderr, rep)
	return nil
}
