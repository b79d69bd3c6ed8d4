package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource supplies the current session token. The transport only
// reads it; issuing and clearing tokens belongs to the auth flow.
type TokenSource interface {
	Token() string
}

// Options describes a single API call. Method defaults to GET.
type Options struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Client issues JSON calls against the backend and normalizes every
// outcome into either a raw payload or a typed *Error.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource
	log     *zap.Logger
}

func NewClient(cfg utils.APIConfig, tokens TokenSource, log *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}

	return &Client{
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:  tokens,
		log:     log.With(zap.String("component", "transport")),
	}
}

// Request performs one API call. Non-success statuses become a
// KindRequest error carrying the backend's own message when it sends
// one; failures to reach the server at all become KindConnectivity.
// No retries, no caching.
func (c *Client) Request(ctx context.Context, endpoint string, opts Options) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		bodyBytes, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body for %s: %w", endpoint, err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request %s %s: %w", method, endpoint, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	// Caller headers merge over the defaults
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("API request failed to reach server",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, NewConnectivityError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("API response body read failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, NewConnectivityError()
	}

	duration := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := errorMessageFromBody(respBody, resp.StatusCode)

		c.log.Warn("API request rejected",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
			zap.Duration("duration", duration),
		)
		return nil, NewRequestError(message, resp.StatusCode)
	}

	c.log.Info("API request",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)),
		zap.Duration("duration", duration),
	)

	return respBody, nil
}

// errorMessageFromBody pulls the backend's message field out of an
// error body. Non-JSON bodies fall back to the status reason phrase,
// then to a generic message.
func errorMessageFromBody(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
	} else if text := http.StatusText(status); text != "" {
		return text
	}
	return genericErrorMessage
}
