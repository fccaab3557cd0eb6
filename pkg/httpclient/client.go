// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

// Package httpclient wraps the outbound HTTP transport shared by every
// portal call: a configured client, a functional request builder and the
// translation of status codes into typed errors.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the transport settings for the shared HTTP client.
type Config struct {
	Timeout time.Duration
}

// DefaultConfig returns the transport settings used unless overridden.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Response is the raw outcome of a single HTTP request.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// RetryableError marks a transient upstream failure (throttling or 5xx).
// Callers decide whether to retry; nothing in this package retries on its
// own.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return e.Message
}

// Client is a thin wrapper around http.Client shared by all gateway calls.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a Client with the given configuration.
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
	}
}

// Request performs a single HTTP request and drains the response body.
// Throttled and 5xx responses are reported as *RetryableError alongside the
// response so callers can inspect the status code.
func (c *Client) Request(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
		Header:     resp.Header,
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return response, &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s %s returned status %d", method, url, resp.StatusCode),
		}
	}

	return response, nil
}
