// Package token decodes the claims embedded in a platform access token.
//
// The backend signs tokens and the client receives them over authenticated
// responses, so the codec reads claims without verifying the signature. It is
// a pure helper: no network, no storage.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nbassil/campuslink/internal/client/models"
)

// ErrNoExpiry is returned for tokens that carry no exp claim. The refresh
// scheduler cannot operate without one.
var ErrNoExpiry = errors.New("token has no expiry claim")

// Claims is the decoded subset of the access token used by the session
// manager: when the token stops being usable and what the user may do.
type Claims struct {
	Role      models.Role
	ExpiresAt time.Time
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Decode extracts role and expiry from accessToken. Malformed tokens, tokens
// without an exp claim, and tokens with an empty or unknown role claim all
// return an error; callers treat any of these as an invalid session.
func Decode(accessToken string) (*Claims, error) {
	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return nil, ErrNoExpiry
	}

	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	return &Claims{Role: role, ExpiresAt: claims.ExpiresAt.Time}, nil
}
