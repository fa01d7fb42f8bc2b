package providers

import (
	"fmt"

	"podbrief/internal/config"
	"podbrief/internal/logger"
)

// Resolve builds the capability set from config.
func Resolve(cfg *config.Config, log logger.Logger) (*Set, error) {
	if cfg.Providers.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("missing OpenAI API key")
	}
	if len(cfg.Providers.Gemini.APIKeys) == 0 {
		return nil, fmt.Errorf("missing Gemini API keys")
	}

	oa := newOpenAI(cfg.Providers.OpenAI)
	return &Set{
		Transcriber: oa,
		Generator:   newGemini(cfg.Providers.Gemini, log),
		Synthesizer: oa,
	}, nil
}
