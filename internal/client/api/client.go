// Package api wraps the platform's REST resources (events, clubs, RSVPs,
// dashboard, uploads) behind typed clients. Authentication errors surface as
// the gateway sentinels so callers can match them with errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nbassil/campuslink/internal/client/gateway"
)

// TokenSource supplies the current access token for request authorization.
// An empty token sends the request unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) AccessToken() string { return f() }

// Client is the shared HTTP plumbing behind the typed resource clients.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// do sends body (when non-nil) as JSON and decodes the response into out
// (when non-nil). Status mapping matches the auth gateway: transport failures
// and 5xx to ErrUnavailable, 401/403 to ErrUnauthorized, other non-2xx to
// *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if tok := c.tokens.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", gateway.ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", gateway.ErrUnauthorized, apiMessage(data))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &gateway.APIError{StatusCode: resp.StatusCode, Message: apiMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func apiMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}
