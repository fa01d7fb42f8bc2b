package providers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"podbrief/internal/config"
	"podbrief/internal/logger"
)

type geminiProvider struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
}

func newGemini(cfg config.GeminiConfig, log logger.Logger) *geminiProvider {
	return &geminiProvider{
		apiKeys: cfg.APIKeys,
		model:   cfg.Model,
		logger:  log,
	}
}

// Generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(p.apiKeys)
	var lastErr error

	for range attempts {
		key := p.nextKey(false)

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.nextKey(true)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				p.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				p.nextKey(true)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all Gemini keys exhausted: %w", lastErr)
}

func (p *geminiProvider) nextKey(rotate bool) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rotate {
		p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
	}
	return p.apiKeys[p.currentKey]
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
