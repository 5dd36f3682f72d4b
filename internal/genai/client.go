// Package genai is the HTTP client for the remote text-generation endpoint.
// Every failure mode of a single attempt (transport error, non-2xx status,
// 2xx without generated text) is transient; attempts are retried with
// exponential backoff until the budget is exhausted.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrorType categorizes single-attempt failures.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeTransport
	ErrTypeStatus
	ErrTypeInvalidResponse
)

// RequestError is a failure of one HTTP attempt. All RequestErrors are
// retryable.
type RequestError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Cause }

// GenerationError means the retry budget is exhausted. Cause is the error
// from the final attempt.
type GenerationError struct {
	Attempts int
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// ErrNoText marks a 2xx response that lacked the generated-text field.
var ErrNoText = errors.New("response carried no generated text")

const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultModel      = "gemini-2.0-flash"
	DefaultMaxRetries = 3

	// NoRetries disables retrying entirely; a zero MaxRetries means
	// "unset" and gets the default.
	NoRetries = -1
)

// Config holds the client configuration. The API key is injected here, not
// read from ambient process state, so tests can point the client at a fake
// endpoint.
type Config struct {
	// BaseURL of the generative-language API (default: DefaultBaseURL).
	BaseURL string

	// APIKey passed as the key query parameter. An empty key is still
	// sent; the remote rejection surfaces as a retryable status failure.
	APIKey string

	// Model name interpolated into the request path.
	Model string

	// MaxRetries after the initial attempt (default: 3, so 4 attempts).
	// NoRetries makes every call single-attempt.
	MaxRetries int

	// HTTPClient used for requests. Defaults to a fresh http.Client.
	HTTPClient *http.Client

	// Sleep is called for backoff delays. Defaults to time.Sleep;
	// tests substitute a recorder.
	Sleep func(time.Duration)
}

// Client performs generation calls. Safe for concurrent use, though the
// editor only ever keeps one call in flight.
type Client struct {
	cfg Config
}

// New returns a Client with zero config values filled with defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Client{cfg: cfg}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.cfg.Model }

// Generate sends payload with a task-specific system instruction and
// returns the generated text verbatim. Failed attempts are retried with
// delays of 2^i seconds (i = 0,1,2,...); when the budget is exhausted the
// error is a *GenerationError wrapping the last attempt's failure.
func (c *Client) Generate(ctx context.Context, instruction, payload string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			c.cfg.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
		text, err := c.generateOnce(ctx, instruction, payload)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", &GenerationError{Attempts: c.cfg.MaxRetries + 1, Cause: lastErr}
}

func (c *Client) generateOnce(ctx context.Context, instruction, payload string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: payload}}}},
	}
	if instruction != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: instruction}}}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &RequestError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.Model), url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &RequestError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", &RequestError{Type: ErrTypeTransport, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if derr := json.NewDecoder(resp.Body).Decode(&apiErr); derr == nil && apiErr.Error.Message != "" {
			return "", &RequestError{Type: ErrTypeStatus, Message: apiErr.Error.Message}
		}
		return "", &RequestError{Type: ErrTypeStatus, Message: "generation request failed: " + resp.Status}
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &RequestError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	text := result.text()
	if text == "" {
		return "", &RequestError{Type: ErrTypeInvalidResponse, Message: "invalid response", Cause: ErrNoText}
	}
	return text, nil
}

// IsExhausted reports whether err is a retries-exhausted generation failure.
func IsExhausted(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
