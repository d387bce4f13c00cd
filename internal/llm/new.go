package llm

import (
	"fmt"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

// New creates the completion Client selected by llm.provider
func New(cfg config.LLMConfig, log logger.Logger) (Client, error) {
	switch cfg.Provider {
	case "groq":
		return newGroqClient(cfg, log), nil
	case "gemini":
		return newGeminiClient(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
