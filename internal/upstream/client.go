// Package upstream forwards validated input to the chat-completion provider
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"relay-api/internal/metrics"
	"relay-api/internal/shared"

	"go.uber.org/zap"
)

type Client struct {
	APIKey    string
	URL       string
	Model     string
	MaxTokens int

	Log        *zap.SugaredLogger
	httpClient *http.Client
}

func NewClient(apiKey, url, model string, log *zap.SugaredLogger) *Client {
	return &Client{
		APIKey:    apiKey,
		URL:       url,
		Model:     model,
		MaxTokens: shared.DefaultMaxTokens,
		Log:       log,
		httpClient: &http.Client{
			Timeout: shared.DefaultHTTPTimeout,
		},
	}
}

// Send issues exactly one completion call, no retries. A non-2xx status comes
// back as a *shared.RequestError carrying the status code; anything that
// keeps us from reading a well-formed completion comes back as a plain error
// whose message is safe to surface.
func (c *Client) Send(ctx context.Context, input string) (string, error) {
	bodyJSON, err := json.Marshal(shared.ChatRequest{
		Model:     c.Model,
		Messages:  []shared.ChatMessage{{Role: "user", Content: input}},
		MaxTokens: c.MaxTokens,
	})
	if err != nil {
		return "", errors.Join(errors.New("failed building request"), err)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(bodyJSON))
	if err != nil {
		return "", errors.Join(errors.New("failed building request"), err)
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+c.APIKey)

	start := time.Now()
	res, err := c.httpClient.Do(r)
	if err != nil {
		c.Log.Warnw("Upstream request failed", "error", err.Error())
		metrics.UpstreamErrors.WithLabelValues(c.Model, shared.ErrFailedUpstreamReq.Code).Inc()
		return "", fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			c.Log.Warnw("Failed to close response body", "error", closeErr)
		}
	}()
	metrics.UpstreamLatency.WithLabelValues(c.Model).Observe(time.Since(start).Seconds())

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		c.Log.Warnw("Failed to read upstream response", "error", err.Error())
		metrics.UpstreamErrors.WithLabelValues(c.Model, shared.ErrFailedReadingResponse.Code).Inc()
		return "", fmt.Errorf("failed to read upstream response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// The raw body is diagnostic only, it never reaches the caller.
		c.Log.Warnw("Upstream rejected request", "status_code", res.StatusCode, "body", string(bodyBytes))
		metrics.UpstreamErrors.WithLabelValues(c.Model, shared.ErrUpstreamBadStatus.Code).Inc()
		return "", &shared.RequestError{StatusCode: res.StatusCode, Err: errors.New("upstream rejected request")}
	}

	var parsed shared.ChatResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		c.Log.Warnw("Failed to decode upstream response", "error", err.Error())
		metrics.UpstreamErrors.WithLabelValues(c.Model, shared.ErrFailedDecodingBody.Code).Inc()
		return "", fmt.Errorf("failed to decode upstream response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		c.Log.Warnw("Upstream returned no choices")
		metrics.UpstreamErrors.WithLabelValues(c.Model, shared.ErrEmptyChoices.Code).Inc()
		return "", shared.ErrNoChoices
	}

	content := parsed.Choices[0].Message.Content
	if content == "" {
		c.Log.Warnw("Upstream returned empty content")
		metrics.UpstreamErrors.WithLabelValues(c.Model, shared.ErrBlankContent.Code).Inc()
		return "", shared.ErrNoContent
	}

	return content, nil
}
