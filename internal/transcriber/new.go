package transcriber

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

// New creates the backend selected by cfg.Provider, authenticated with the
// provider's key from cfg.APIKey.
func New(ctx context.Context, cfg *config.Config, progress *Progress, log logger.Logger) (Transcriber, error) {
	key := cfg.APIKey()

	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		if key == "" {
			return nil, fmt.Errorf("openai: API key not provided (set openai.api_key or %s)", config.EnvOpenAIKey)
		}
		return NewOpenAI(key,
			WithBaseURL(cfg.OpenAI.BaseURL),
			WithTimeout(cfg.OpenAI.Timeout),
			WithProgress(progress),
			WithLogger(log),
		)
	case config.ProviderGemini:
		if key == "" {
			return nil, fmt.Errorf("gemini: API key not provided (set gemini.api_key or %s)", config.EnvGeminiKey)
		}
		return NewGemini(ctx, key,
			WithProgress(progress),
			WithLogger(log),
		)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
