package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/prompt"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgPath   string
	promptSel string
	model     string
	limit     int
	format    string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Summarize video captions with a streaming chat-completion API",
	Long: `digest downloads the caption track of a video (or reads a local WebVTT
file), flattens it into prose and asks a chat model for a Markdown summary.
Transcripts over the chunk limit are summarized piece by piece.

Examples:
  digest summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ
  digest summarize -p detailed -m gpt-4o-mini https://youtu.be/dQw4w9WgXcQ
  digest file talk.en.vtt --format both
  digest watch`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	bindFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(summarizeCmd, fileCmd, watchCmd, promptsCmd)
}

func bindFlags(pf *pflag.FlagSet) {
	pf.StringVar(&cfgPath, "config", "config.yaml", "config file")
	pf.StringVarP(&promptSel, "prompt", "p", "", "prompt template: index or name (outline, detailed, partial)")
	pf.StringVarP(&model, "model", "m", "", "completion model id")
	pf.IntVar(&limit, "limit", 0, "chunk limit in characters")
	pf.StringVar(&format, "format", "", "output format: md, docx or both")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported errReported
		if !errors.As(err, &reported) {
			printError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadConfig reads the config file (defaults when absent) and applies any
// flags the user set.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, flags); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("prompt") {
		sel, err := resolvePrompt(prompt.FromConfig(cfg.Summary.Prompts), promptSel)
		if err != nil {
			return err
		}
		cfg.Summary.Prompt = sel
	}
	if flags.Changed("model") {
		if cfg.Provider == config.ProviderGemini {
			cfg.Gemini.Model = model
		} else {
			cfg.OpenAI.Model = model
		}
	}
	if flags.Changed("limit") {
		cfg.Summary.ChunkLimit = limit
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	return nil
}

// resolvePrompt accepts a numeric selector or a template name.
func resolvePrompt(c *prompt.Catalog, s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if _, err := c.Template(n); err != nil {
			return 0, err
		}
		return n, nil
	}
	return c.Lookup(s)
}
