// Package gateway defines the client's view of the platform's auth endpoints
// and provides the HTTP/JSON implementation. The session manager depends on
// the Gateway interface only; tests substitute fakes.
package gateway

import "context"

// LoginResult is the completed-login response: a usable token pair plus the
// account identity.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"id"`
	Email        string `json:"email"`
	Major        string `json:"major"`
	CreatedAt    string `json:"createdAt"`
}

// PendingVerification is the response for an account that exists server-side
// but has not completed email verification. No tokens are issued yet.
type PendingVerification struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// LoginOutcome discriminates the two shapes the signin endpoint can return.
// Exactly one of Completed or Pending is set.
type LoginOutcome struct {
	Completed *LoginResult
	Pending   *PendingVerification
}

// RefreshResult carries the newly minted access token.
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
}

// SignUpRequest is the account-creation payload. PushToken is optional and
// best effort: an empty value is simply omitted.
type SignUpRequest struct {
	Email     string
	Password  string
	Major     string
	PushToken string
}

// Gateway is the remote auth collaborator. All calls honor ctx cancellation;
// timeouts are owned by the transport, not by callers.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*LoginOutcome, error)
	SignUp(ctx context.Context, req SignUpRequest) (*PendingVerification, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error)
	Verify(ctx context.Context, code, userID string) (*LoginResult, error)
	SignOut(ctx context.Context, accessToken string) error
}
