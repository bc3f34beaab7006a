package cryptox

import "golang.org/x/crypto/argon2"

// Argon2id parameters: 1 pass, 64 MiB, 4 lanes, 32-byte key. These match the
// interactive-use profile from the argon2 docs.
func deriveArgon2id(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}
