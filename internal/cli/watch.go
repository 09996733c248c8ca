package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/watcher"
)

var watchExisting bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize caption files dropped into the input folder",
	Long: `Watch paths.input for new .vtt files. Each file is summarized into
paths.output and then moved to paths.archived. Press Ctrl+C to stop; runs in
progress are allowed to finish.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchExisting, "existing", false, "also process .vtt files already in the input folder")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	handler := func(ctx context.Context, path string) error {
		rep, err := a.processor.ProcessFile(ctx, path)
		if err != nil {
			if rep.Diagnostic != "" {
				printFailure(os.Stderr, rep, err)
			}
			return err
		}
		printReport(os.Stderr, rep)
		_, err = a.processor.Archive(ctx, path)
		return err
	}

	var opts []watcher.Option
	if watchExisting {
		opts = append(opts, watcher.WithExisting())
	}
	w, err := watcher.New(cfg.Paths.Input, handler, a.logger, cfg.Performance.MaxConcurrent, opts...)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	a.logger.Info(ctx, "Provider: %s, model: %s, chunk limit: %d", cfg.Provider, cfg.Model(), cfg.Summary.ChunkLimit)
	a.logger.Info(ctx, "Output: %s (%s)", cfg.Paths.Output, cfg.Output.Format)
	a.logger.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info(context.Background(), "Shutting down")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
