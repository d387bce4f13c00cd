package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

type geminiClient struct {
	apiKeys   []string
	model     string
	maxTokens int
	logger    logger.Logger

	mu         sync.Mutex
	currentKey int
}

func newGeminiClient(cfg config.LLMConfig, log logger.Logger) *geminiClient {
	return &geminiClient{
		apiKeys:   cfg.APIKeys,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    log,
	}
}

// CompleteJSON asks Gemini for a JSON response. Rotates API keys on
// quota errors. Gemini has no partial-generation error channel, so
// malformed output is only recoverable downstream via structural repair.
func (c *geminiClient) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.pickKey(),
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		genCfg := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   int32(c.maxTokens),
			ResponseMIMEType:  "application/json",
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(user), genCfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *geminiClient) pickKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey]
}

func (c *geminiClient) rotateKey() {
	c.mu.Lock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	c.mu.Unlock()
}
