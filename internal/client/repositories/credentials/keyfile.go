package credentials

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nbassil/campuslink/internal/cryptox"
)

const (
	saltSize   = 16
	secretSize = 32
)

// LoadOrCreateKey returns the AES key protecting the credential store.
//
// The key is derived (Argon2id) from a per-install random secret kept next to
// the database. On first run the secret file is created with 0600
// permissions; subsequent runs reuse it, so sealed records survive restarts.
func LoadOrCreateKey(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		raw = make([]byte, saltSize+secretSize)
		if _, err := rand.Read(raw); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write key file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	if len(raw) != saltSize+secretSize {
		return nil, fmt.Errorf("key file %s is corrupt", path)
	}

	salt, secret := raw[:saltSize], raw[saltSize:]
	defer cryptox.WipeByteArray(secret)

	return cryptox.DeriveKey(secret, salt), nil
}
