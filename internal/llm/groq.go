package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

type groqClient struct {
	baseURL    string
	apiKeys    []string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     logger.Logger

	mu         sync.Mutex
	currentKey int
}

func newGroqClient(cfg config.LLMConfig, log logger.Logger) *groqClient {
	return &groqClient{
		baseURL:    defaultGroqBaseURL,
		apiKeys:    cfg.APIKeys,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message          string `json:"message"`
		Type             string `json:"type"`
		Code             string `json:"code"`
		FailedGeneration string `json:"failed_generation"`
	} `json:"error"`
}

// CompleteJSON issues one chat completion in JSON mode. API keys are
// rotated on rate-limit responses, the same way the transcript pipeline
// rotates Gemini keys.
func (c *groqClient) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		text, err := c.complete(ctx, c.pickKey(), system, user)
		if err == nil {
			return text, nil
		}

		if isRateLimited(err) {
			c.logger.Warn(ctx, "Groq key rate limited, rotating...")
			c.rotateKey()
			lastErr = err
			continue
		}

		return "", err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *groqClient) complete(ctx context.Context, apiKey, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: c.maxTokens,
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.decodeError(resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from Groq")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// decodeError maps non-200 responses onto error values. A 400 carrying a
// failed_generation payload becomes a BadRequestError so callers can
// recover the partial output.
func (c *groqClient) decodeError(status int, body []byte) error {
	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fmt.Errorf("groq API status %d: %s", status, strings.TrimSpace(string(body)))
	}

	if status == http.StatusBadRequest && apiErr.Error.FailedGeneration != "" {
		return &BadRequestError{
			Message:          apiErr.Error.Message,
			Code:             apiErr.Error.Code,
			FailedGeneration: apiErr.Error.FailedGeneration,
		}
	}

	return fmt.Errorf("groq API status %d (%s): %s", status, apiErr.Error.Code, apiErr.Error.Message)
}

func (c *groqClient) pickKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey]
}

func (c *groqClient) rotateKey() {
	c.mu.Lock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	c.mu.Unlock()
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "status 429") || strings.Contains(msg, "rate_limit")
}
