package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/birthsafe/enrollbridge/internal/config"
	"github.com/birthsafe/enrollbridge/internal/domain"
)

// CompletionService calls an OpenRouter style chat-completions API.
// Every call is single-turn: the fixed persona plus one user message.
type CompletionService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewCompletionService(apiKey, model string) *CompletionService {
	return &CompletionService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://openrouter.ai/api/v1",
		httpClient: &http.Client{Timeout: config.CompletionTimeout},
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Answer runs the member's question through the model under the
// assistant persona.
func (s *CompletionService) Answer(ctx context.Context, question string) (string, error) {
	if s.apiKey == "" {
		return "", domain.ErrNoCredential
	}

	chatReq := ChatRequest{
		Model: s.model,
		Messages: []ChatMessage{
			{Role: "system", Content: domain.AssistantPersona},
			{Role: "user", Content: question},
		},
	}

	payload, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("rate limited by OpenRouter (429)")
	}
	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("OpenRouter unavailable (%d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return chatResp.Choices[0].Message.Content, nil
}
