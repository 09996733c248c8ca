package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

// Supported completion providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Supported output formats.
const (
	FormatMarkdown = "md"
	FormatDocx     = "docx"
	FormatBoth     = "both"
)

type Config struct {
	Provider    string            `yaml:"provider"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Summary     SummaryConfig     `yaml:"summary"`
	Downloader  DownloaderConfig  `yaml:"downloader"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type OpenAIConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type SummaryConfig struct {
	Prompt      int      `yaml:"prompt"`
	ChunkPrompt *int     `yaml:"chunk_prompt"`
	ChunkLimit  int      `yaml:"chunk_limit"`
	Prompts     []string `yaml:"prompts"`
}

type DownloaderConfig struct {
	Binary   string `yaml:"binary"`
	Language string `yaml:"language"`
	TempDir  string `yaml:"temp_dir"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type OutputConfig struct {
	Format           string `yaml:"format"`
	WriteDiagnostics *bool  `yaml:"write_diagnostics"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Model returns the model configured for the active provider.
func (c *Config) Model() string {
	if c.Provider == ProviderGemini {
		return c.Gemini.Model
	}
	return c.OpenAI.Model
}

// APIKey returns the credential for the active provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.Gemini.APIKey
	}
	return c.OpenAI.APIKey
}

// WritesDiagnostics reports whether failure diagnostics are written in place
// of a summary.
func (c *Config) WritesDiagnostics() bool {
	return c.Output.WriteDiagnostics == nil || *c.Output.WriteDiagnostics
}

func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return fmt.Errorf("provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Provider)
	}
	if c.Summary.Prompt < 0 {
		return fmt.Errorf("summary.prompt must not be negative")
	}
	if c.Summary.ChunkPrompt != nil && *c.Summary.ChunkPrompt < 0 {
		return fmt.Errorf("summary.chunk_prompt must not be negative")
	}
	if c.Summary.ChunkLimit < 0 {
		return fmt.Errorf("summary.chunk_limit must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	switch c.Output.Format {
	case "":
		c.Output.Format = FormatMarkdown
	case FormatMarkdown, FormatDocx, FormatBoth:
	default:
		return fmt.Errorf("output.format must be md, docx or both, got %q", c.Output.Format)
	}

	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-2024-05-13"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Summary.ChunkLimit == 0 {
		c.Summary.ChunkLimit = 15000
	}
	if c.Downloader.Binary == "" {
		c.Downloader.Binary = "yt-dlp"
	}
	if c.Downloader.Language == "" {
		c.Downloader.Language = "en"
	}
	if c.Downloader.TempDir == "" {
		c.Downloader.TempDir = os.TempDir()
	}
	if c.Paths.Input == "" {
		c.Paths.Input = filepath.Join("data", "input")
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = filepath.Join("data", "archived")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
