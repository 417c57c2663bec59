package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tbranton/whisperwood/pkg/chat"
)

// OpenAIService implements LLMService against the OpenAI chat
// completions API. Any compatible endpoint works via baseURL.
type OpenAIService struct {
	apiKey     string
	baseURL    string
	modelName  string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ LLMService = (*OpenAIService)(nil)

// OpenAIChatRequest represents the chat completions request body.
type OpenAIChatRequest struct {
	Model       string             `json:"model"`
	Messages    []chat.ChatMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
	MaxTokens   int                `json:"max_tokens,omitempty"`
}

// OpenAIChatResponse represents the chat completions response body.
type OpenAIChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// NewOpenAIService creates a new OpenAI-compatible service instance.
func NewOpenAIService(apiKey string, baseURL string, modelName string, logger *slog.Logger) *OpenAIService {
	return &OpenAIService{
		apiKey:    apiKey,
		baseURL:   baseURL,
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		logger: logger,
	}
}

// InitModel verifies the API key by listing models. OpenAI requires no
// explicit model initialization.
func (s *OpenAIService) InitModel(ctx context.Context, modelName string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	s.logger.Info("OpenAI service ready", "model", modelName)
	return nil
}

// Chat generates a response using the chat completions API.
func (s *OpenAIService) Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	request := OpenAIChatRequest{
		Model:    s.modelName,
		Messages: messages,
		// Translation must be deterministic, not creative.
		Temperature: 0.0,
		MaxTokens:   500,
	}

	reqBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("OpenAI API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body))
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var apiResp OpenAIChatResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from API")
	}

	choice := apiResp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, fmt.Errorf("model refused to respond: %s", choice.Message.Refusal)
	}
	if choice.Message.Content == "" {
		return nil, fmt.Errorf("no text content found in response")
	}

	return &chat.ChatResponse{
		Message: choice.Message.Content,
	}, nil
}
