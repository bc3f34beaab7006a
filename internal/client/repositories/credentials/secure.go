package credentials

import (
	"context"
	"fmt"

	"github.com/nbassil/campuslink/internal/cryptox"
)

// nonceSize is the AES-GCM nonce length prepended to every sealed value.
const nonceSize = 12

// SecureRepository wraps a Repository and seals values with AES-GCM before
// they reach the underlying storage. The stored layout is nonce||ciphertext.
//
// This is the client-side stand-in for an OS keychain: the sqlite file never
// holds token material in the clear.
type SecureRepository struct {
	inner Repository
	key   []byte
}

func NewSecureRepository(inner Repository, key []byte) *SecureRepository {
	return &SecureRepository{inner: inner, key: key}
}

func (r *SecureRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return nil, nil
	}
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("sealed credentials[%s] too short", key)
	}

	value, err := cryptox.Decrypt(sealed[nonceSize:], sealed[:nonceSize], r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SecureRepository) Set(ctx context.Context, key string, value []byte) error {
	ciphertext, nonce, err := cryptox.Encrypt(value, r.key)
	if err != nil {
		return fmt.Errorf("failed to seal credentials[%s]: %w", key, err)
	}
	return r.inner.Set(ctx, key, append(nonce, ciphertext...))
}

func (r *SecureRepository) Delete(ctx context.Context, key string) error {
	return r.inner.Delete(ctx, key)
}
