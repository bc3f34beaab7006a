// Package session owns the client's authentication lifecycle: who the current
// user is, whether their credential is still valid, and keeping that
// credential fresh across token expiry and app foreground transitions.
//
// A single Manager instance is constructed at process start and injected into
// whatever consumes it. Consumers read the session through Current or
// Subscribe and never mutate it.
package session

import (
	"github.com/nbassil/campuslink/internal/client/models"
)

// Status is the session lifecycle state. It replaces the pair of nullable
// booleans (authenticated/isVerified) the platform UI historically juggled:
// only reachable combinations exist.
type Status int

const (
	// StatusUnknown holds from process start until Bootstrap completes.
	StatusUnknown Status = iota

	// StatusUnauthenticated means no usable credential exists.
	StatusUnauthenticated

	// StatusPendingVerification means an account exists server-side but
	// email verification has not completed, so no token pair exists yet.
	StatusPendingVerification

	// StatusAuthenticated means a full credential is present and the
	// refresh scheduler is armed.
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusPendingVerification:
		return "pending_verification"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Credential is the durable record persisted in the credential store.
//
// Invariant: AccessToken present implies RefreshToken and Role present.
// Tokens are absent only while the account is pending email verification.
type Credential struct {
	AccessToken  string      `json:"accessToken,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	UserID       string      `json:"id"`
	Email        string      `json:"email"`
	Role         models.Role `json:"role,omitempty"`

	// Profile passthrough; not interpreted here.
	Major     string `json:"major,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// HasTokens reports whether the credential carries a full token pair.
func (c *Credential) HasTokens() bool {
	return c != nil && c.AccessToken != "" && c.RefreshToken != ""
}

// Session is the in-memory, derived state handed to observers. Each
// transition builds a complete new Session and replaces the old one
// atomically; consumers never see a partial write.
type Session struct {
	Status     Status
	Credential *Credential
}

// Authenticated reports whether the session holds a usable credential.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated
}

// IsAdmin reports whether the current role is Admin; false when no
// credential is present.
func (s Session) IsAdmin() bool {
	return s.Credential != nil && s.Credential.Role == models.RoleAdmin
}
