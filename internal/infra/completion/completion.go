package completion

import (
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/service"
)

// New selects the completion backend at wiring time: the OpenAI client when
// an API key is configured, the deterministic composer otherwise.
func New(cfg *config.Config, logger *slog.Logger) service.CompletionService {
	if cfg.OpenAI != nil && cfg.OpenAI.APIKey != "" {
		return NewOpenAIService(cfg.OpenAI)
	}

	logger.Warn("No completion API key configured, using deterministic fallback")

	return NewDeterministicService()
}
