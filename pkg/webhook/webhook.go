// Package webhook posts measurement reports to HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ccollicutt/logdelta/pkg/output"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// maxResponseBody caps how much of a response body is kept.
const maxResponseBody = 1024 * 1024

// Target is one webhook endpoint.
type Target struct {
	Name    string
	URL     string
	Token   string        // Bearer token (optional)
	Timeout time.Duration // Uses DefaultTimeout if zero
}

// DisplayName returns Name, or the URL when Name is empty.
func (t Target) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.URL
}

// Response contains the result of a webhook request.
type Response struct {
	Target     Target
	StatusCode int
	Body       string
	Duration   time.Duration
	Error      error
}

// Success returns true if the webhook was delivered with a 2xx status.
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Client sends measurement reports to webhook endpoints.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new webhook client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  "logdelta-webhook",
	}
}

// Notify sends report to every target in order and returns one Response per target.
// Delivery failures are recorded in the responses, never returned.
func (c *Client) Notify(ctx context.Context, report *output.Report, targets []Target) []*Response {
	if len(targets) == 0 {
		return nil
	}

	payload, err := json.Marshal(report)
	responses := make([]*Response, 0, len(targets))
	for _, t := range targets {
		if err != nil {
			responses = append(responses, &Response{Target: t, Error: fmt.Errorf("failed to marshal report: %w", err)})
			continue
		}
		responses = append(responses, c.post(ctx, payload, t))
	}
	return responses
}

// Send posts a single report to one target.
func (c *Client) Send(ctx context.Context, report *output.Report, target Target) *Response {
	payload, err := json.Marshal(report)
	if err != nil {
		return &Response{Target: target, Error: fmt.Errorf("failed to marshal report: %w", err)}
	}
	return c.post(ctx, payload, target)
}

func (c *Client) post(ctx context.Context, payload []byte, target Target) *Response {
	start := time.Now()
	resp := &Response{Target: target}
	defer func() { resp.Duration = time.Since(start) }()

	timeout := target.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(payload))
	if err != nil {
		resp.Error = fmt.Errorf("failed to create request: %w", err)
		return resp
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if target.Token != "" {
		req.Header.Set("Authorization", "Bearer "+target.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		resp.Error = fmt.Errorf("request failed: %w", err)
		return resp
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		resp.Error = fmt.Errorf("failed to read response: %w", err)
		return resp
	}

	resp.StatusCode = httpResp.StatusCode
	resp.Body = string(body)
	if resp.StatusCode >= 400 {
		resp.Error = fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return resp
}
