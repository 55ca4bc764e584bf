// Package crypto provides symmetric encryption for secrets stored at rest.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"pulse/config"
	"pulse/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// TokenCipher seals and opens provider token material before it touches the
// database. Ciphertexts are base64-encoded so they fit in text columns.
type TokenCipher struct {
	key []byte
}

// NewTokenCipher builds a cipher from the hex-encoded 32-byte key in config.
func NewTokenCipher(cfg *config.Config) (*TokenCipher, error) {
	key, err := hex.DecodeString(cfg.SecretKey.TokenCipher)
	if err != nil {
		return nil, errors.Wrap(err, "token cipher key must be hex encoded")
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("token cipher key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	return &TokenCipher{key: key}, nil
}

// Seal encrypts plaintext with a random nonce. An empty plaintext seals to
// an empty string so optional tokens stay optional in storage.
func (c *TokenCipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.Wrap(err, "init cipher")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal.
func (c *TokenCipher) Open(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "decode ciphertext")
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.Wrap(err, "init cipher")
	}

	if len(raw) < aead.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.Wrap(err, "open ciphertext")
	}

	return string(plaintext), nil
}
