// Package advisor asks an OpenAI-compatible completion gateway to select
// stations, slots and creative for a business description.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"radio-mediaplan/internal/config/configs"
	"radio-mediaplan/internal/core/calculator"
	"radio-mediaplan/internal/core/domain"
	"radio-mediaplan/internal/resilience"
)

var (
	errEmptyResponse     = errors.New("advisor returned no content")
	errMalformedResponse = errors.New("advisor returned malformed advice")
)

// Client implements port.Advisor.
type Client struct {
	cfg    configs.Advisor
	http   *resilience.Client
	prompt string
	gift   bool
	logger *slog.Logger
}

// New returns a client whose system prompt describes catalog and the terms
// of policy.
func New(
	cfg configs.Advisor,
	catalog domain.Catalog,
	policy calculator.Policy,
	httpClient *resilience.Client,
	logger *slog.Logger,
) (*Client, error) {
	prompt, err := SystemPrompt(catalog, policy)
	if err != nil {
		return nil, err
	}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		prompt: prompt,
		gift:   policy.ProductionSurcharge.IsZero(),
		logger: logger,
	}, nil
}

// Advise sends query to the gateway and decodes the model's advice. Quota
// responses map to domain.ErrAdvisorRateLimited and
// domain.ErrAdvisorPaymentRequired.
func (c *Client) Advise(ctx context.Context, query string) (*domain.Advice, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.ErrAdvisorNotConfigured
	}

	body, err := json.Marshal(completionRequest{
		Model: c.cfg.Model,
		Messages: []message{
			{Role: "system", Content: c.prompt},
			{Role: "user", Content: userPrompt(query, c.gift)},
		},
	})
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advisor request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.ErrAdvisorRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, domain.ErrAdvisorPaymentRequired
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("advisor gateway error",
			slog.Int("status", resp.StatusCode), slog.String("body", string(snippet)))
		return nil, fmt.Errorf("advisor gateway: unexpected status %d", resp.StatusCode)
	}

	var completion completionResponse
	if err = json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return nil, errEmptyResponse
	}

	advice, err := ParseAdvice(completion.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("failed to parse advisor response",
			slog.Any("error", err), slog.String("content", completion.Choices[0].Message.Content))
		return nil, err
	}
	return advice, nil
}

// ParseAdvice decodes model output, tolerating markdown code fences and text
// around the JSON object.
func ParseAdvice(content string) (*domain.Advice, error) {
	clean := strings.ReplaceAll(content, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)
	if start, end := strings.IndexByte(clean, '{'), strings.LastIndexByte(clean, '}'); start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var dto adviceDTO
	if err := json.Unmarshal([]byte(clean), &dto); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedResponse, err)
	}
	return dto.toDomain(), nil
}
