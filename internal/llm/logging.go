package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider is a decorator that records every LLM request through
// the structured logger.
type LoggingProvider struct {
	inner Provider
	log   *slog.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *slog.Logger) Provider {
	if log == nil {
		log = slog.Default()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	model := l.inner.ModelID()
	if resp != nil && resp.Model != "" {
		model = resp.Model
	}

	attrs := []any{
		"purpose", PurposeFrom(ctx),
		"model", model,
		"latencyMs", time.Since(start).Milliseconds(),
	}
	if resp != nil {
		attrs = append(attrs,
			"inputTokens", resp.Usage.InputTokens,
			"outputTokens", resp.Usage.OutputTokens,
			"stopReason", resp.StopReason,
		)
	}

	if err != nil {
		attrs = append(attrs, "error", err)
		l.log.Warn("llm request failed", attrs...)
	} else {
		l.log.Debug("llm request completed", attrs...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
