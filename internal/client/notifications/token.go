// Package notifications manages the device push-notification token the
// backend targets when sending event reminders.
package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/nbassil/campuslink/internal/client/repositories/credentials"
)

// storeKey is the credential-store slot the device token lives under. It is
// separate from the session record so signing out does not rotate the device
// identity.
const storeKey = "pushToken"

// DeviceTokenSource issues a stable per-install device token. The first call
// generates and persists one; later calls return the same token.
type DeviceTokenSource struct {
	store credentials.Repository

	mu sync.Mutex
}

func NewDeviceTokenSource(store credentials.Repository) *DeviceTokenSource {
	return &DeviceTokenSource{store: store}
}

// Token returns the persisted device token, minting one on first use.
func (s *DeviceTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, storeKey)
	if err != nil {
		return "", fmt.Errorf("failed to read device token: %w", err)
	}
	if raw != nil {
		return string(raw), nil
	}

	tok := uuid.NewString()
	if err := s.store.Set(ctx, storeKey, []byte(tok)); err != nil {
		return "", fmt.Errorf("failed to persist device token: %w", err)
	}
	return tok, nil
}
