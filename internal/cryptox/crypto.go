// Package cryptox implements the at-rest protection used by the credential
// store: an Argon2id KDF to stretch the local install secret into an AES key,
// and AES-GCM sealing of stored values.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
)

// DeriveKey stretches a local secret and salt into a 32-byte AES-256 key
// using Argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return deriveArgon2id(secret, salt)
}

// Encrypt seals plaintext with AES-GCM under key. A fresh random 12-byte
// nonce is generated per call and returned alongside the ciphertext.
//
// The key must be a valid AES key length (16, 24, or 32 bytes).
func Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt reverses Encrypt. The key and nonce must match the sealing call;
// any tampering with the ciphertext fails authentication.
func Decrypt(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

// WipeByteArray zeroes the buffer in place. Use it on secrets that are no
// longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
