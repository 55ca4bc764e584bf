package completion

import (
	"context"
	"strings"

	"pulse/internal/domain/service"
)

const maxFallbackLines = 8

// deterministicService is the keyless backend. It produces stable,
// template-shaped text from the prompt's content lines so the product
// remains demonstrable without a hosted model.
type deterministicService struct{}

// NewDeterministicService creates the fallback CompletionService.
func NewDeterministicService() service.CompletionService {
	return &deterministicService{}
}

// Complete extracts the prompt's content lines and renders them as a short
// digest. The same prompt always yields the same text.
func (s *deterministicService) Complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	lines := contentLines(prompt)
	if len(lines) == 0 {
		return "Nothing notable to report.", nil
	}

	var b strings.Builder
	for i, line := range lines {
		if i >= maxFallbackLines {
			break
		}
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	text := strings.TrimRight(b.String(), "\n")
	if limit := maxTokens * 4; limit > 0 && len(text) > limit {
		text = text[:limit]
	}

	return text, nil
}

// contentLines keeps the informative lines of a prompt and drops the
// instruction scaffolding (headings and imperative lead-ins).
func contentLines(prompt string) []string {
	var lines []string
	for _, raw := range strings.Split(prompt, "\n") {
		line := strings.TrimSpace(raw)
		line = strings.TrimPrefix(line, "- ")
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
