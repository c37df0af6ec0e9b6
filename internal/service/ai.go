package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mindlift/internal/apperr"
	"mindlift/internal/config"
	"mindlift/internal/logger"
	"mindlift/internal/model"
)

// AIService talks to an OpenAI-compatible API for chat completions and text
// moderation. Both calls retry with linear backoff and a per-attempt timeout;
// exhausted retries surface as apperr.ErrUpstream.
type AIService struct {
	cfg    config.OpenAIConfig
	client *http.Client
}

func NewAIService(cfg config.OpenAIConfig) *AIService {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return &AIService{cfg: cfg, client: &http.Client{}}
}

// Complete sends the system instruction plus the ordered turns and returns
// the raw text reply.
func (s *AIService) Complete(ctx context.Context, system string, turns []model.HistoryItem) (string, error) {
	messages := make([]map[string]string, 0, len(turns)+1)
	messages = append(messages, map[string]string{"role": "system", "content": system})
	for _, t := range turns {
		messages = append(messages, map[string]string{"role": t.Role, "content": t.Content})
	}

	body := map[string]interface{}{
		"model":       s.cfg.ChatModel,
		"messages":    messages,
		"max_tokens":  s.cfg.MaxTokens,
		"temperature": s.cfg.Temperature,
	}

	data, err := s.doJSON(ctx, "/v1/chat/completions", body)
	if err != nil {
		return "", apperr.Upstream("chat completion", err)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", apperr.Upstream("chat completion", fmt.Errorf("decode response: %w", err))
	}
	if len(result.Choices) == 0 {
		return "", apperr.Upstream("chat completion", fmt.Errorf("empty choices"))
	}
	return result.Choices[0].Message.Content, nil
}

// Moderate returns whether the moderation model flagged the text.
func (s *AIService) Moderate(ctx context.Context, input string) (bool, error) {
	body := map[string]interface{}{
		"model": s.cfg.ModerationModel,
		"input": input,
	}

	data, err := s.doJSON(ctx, "/v1/moderations", body)
	if err != nil {
		return false, apperr.Upstream("moderation", err)
	}

	var result struct {
		Results []struct {
			Flagged bool `json:"flagged"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return false, apperr.Upstream("moderation", fmt.Errorf("decode response: %w", err))
	}
	if len(result.Results) == 0 {
		return false, apperr.Upstream("moderation", fmt.Errorf("empty results"))
	}
	return result.Results[0].Flagged, nil
}

func (s *AIService) doJSON(ctx context.Context, path string, body interface{}) ([]byte, error) {
	payload, _ := json.Marshal(body)

	var lastErr error
	for attempt := 1; attempt <= s.cfg.RetryAttempts; attempt++ {
		if attempt > 1 {
			logger.Warn("openai retry", "path", path, "attempt", attempt, "err", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * 500 * time.Millisecond):
			}
		}
		data, err := s.doOnce(ctx, path, payload)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (s *AIService) doOnce(ctx context.Context, path string, payload []byte) ([]byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, "POST", s.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s status %d: %s", path, resp.StatusCode, data)
	}
	return io.ReadAll(resp.Body)
}
