package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and logging decorators.
func NewProvider(ctx context.Context, cfg Config, log *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from LEARNAI_* environment
// variables, falling back to probing the standard provider key variables
// when no explicit configuration validates.
func NewProviderFromEnv(ctx context.Context, log *slog.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
