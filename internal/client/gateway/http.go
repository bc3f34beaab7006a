package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const authPath = "/auth"

// HTTPGateway talks JSON to the platform backend.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway builds a gateway for the given base URL, e.g.
// "https://events.lau.edu". The timeout bounds every request end to end.
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// loginEnvelope covers both shapes the signin endpoint can answer with: a
// completed login (token pair + identity) or a pending-verification notice
// (numeric userId only).
type loginEnvelope struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Major        string      `json:"major"`
	CreatedAt    string      `json:"createdAt"`
	Message      string      `json:"message"`
	UserID       json.Number `json:"userId"`
}

func (g *HTTPGateway) Login(ctx context.Context, email, password string) (*LoginOutcome, error) {
	var env loginEnvelope
	err := g.postJSON(ctx, authPath+"/signin", map[string]string{
		"email":    email,
		"password": password,
	}, "", &env)
	if err != nil {
		return nil, err
	}

	if env.AccessToken != "" {
		return &LoginOutcome{Completed: &LoginResult{
			AccessToken:  env.AccessToken,
			RefreshToken: env.RefreshToken,
			UserID:       env.ID,
			Email:        env.Email,
			Major:        env.Major,
			CreatedAt:    env.CreatedAt,
		}}, nil
	}
	if env.UserID != "" {
		return &LoginOutcome{Pending: &PendingVerification{
			UserID:  env.UserID.String(),
			Message: env.Message,
		}}, nil
	}
	return nil, fmt.Errorf("unexpected signin response shape")
}

func (g *HTTPGateway) SignUp(ctx context.Context, req SignUpRequest) (*PendingVerification, error) {
	body := map[string]string{
		"email":    req.Email,
		"password": req.Password,
		"major":    req.Major,
	}
	if req.PushToken != "" {
		body["notificationToken"] = req.PushToken
	}

	var env loginEnvelope
	if err := g.postJSON(ctx, authPath+"/signup", body, "", &env); err != nil {
		return nil, err
	}
	if env.UserID == "" {
		return nil, fmt.Errorf("unexpected signup response shape")
	}
	return &PendingVerification{UserID: env.UserID.String(), Message: env.Message}, nil
}

func (g *HTTPGateway) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	var res RefreshResult
	err := g.postJSON(ctx, authPath+"/refreshToken", map[string]string{
		"refreshToken": refreshToken,
	}, "", &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *HTTPGateway) Verify(ctx context.Context, code, userID string) (*LoginResult, error) {
	var env loginEnvelope
	err := g.postJSON(ctx, authPath+"/verify", map[string]string{
		"code":   code,
		"userId": userID,
	}, "", &env)
	if err != nil {
		return nil, err
	}
	if env.AccessToken == "" {
		return nil, fmt.Errorf("unexpected verify response shape")
	}
	return &LoginResult{
		AccessToken:  env.AccessToken,
		RefreshToken: env.RefreshToken,
		UserID:       env.ID,
		Email:        env.Email,
		Major:        env.Major,
		CreatedAt:    env.CreatedAt,
	}, nil
}

func (g *HTTPGateway) SignOut(ctx context.Context, accessToken string) error {
	return g.postJSON(ctx, authPath+"/signout", nil, accessToken, nil)
}

// postJSON sends body (when non-nil) as JSON and decodes the response into
// out (when non-nil). Non-2xx statuses are mapped the same way everywhere:
// 5xx and transport failures to ErrUnavailable, 401/403 to ErrUnauthorized,
// anything else to *APIError carrying the backend message.
func (g *HTTPGateway) postJSON(ctx context.Context, path string, body any, bearer string, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiMessage(data))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: apiMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// apiMessage pulls the "message" field out of an error body, falling back to
// the raw body.
func apiMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}
