package crypto

import (
	"encoding/hex"
	"testing"

	"pulse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *TokenCipher {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.TokenCipher = hex.EncodeToString(make([]byte, 32))

	cipher, err := NewTokenCipher(cfg)
	require.NoError(t, err)

	return cipher
}

func TestTokenCipher_SealAndOpen(t *testing.T) {
	cipher := newTestCipher(t)

	sealed, err := cipher.Seal("ya29.a0AfH6SMC-access-token")
	require.NoError(t, err)
	assert.NotEmpty(t, sealed)
	assert.NotContains(t, sealed, "access-token")

	opened, err := cipher.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ya29.a0AfH6SMC-access-token", opened)
}

func TestTokenCipher_EmptyPlaintext(t *testing.T) {
	cipher := newTestCipher(t)

	sealed, err := cipher.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	opened, err := cipher.Open("")
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestTokenCipher_RandomNonce(t *testing.T) {
	cipher := newTestCipher(t)

	first, err := cipher.Seal("same-token")
	require.NoError(t, err)
	second, err := cipher.Seal("same-token")
	require.NoError(t, err)

	// Each seal uses a fresh nonce, so identical plaintexts never collide.
	assert.NotEqual(t, first, second)
}

func TestTokenCipher_TamperedCiphertext(t *testing.T) {
	cipher := newTestCipher(t)

	_, err := cipher.Open("bm90LWEtcmVhbC1jaXBoZXJ0ZXh0LWJ1dC1sb25nLWVub3VnaC10by1wYXNz")
	assert.Error(t, err)
}

func TestNewTokenCipher_BadKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.TokenCipher = "not-hex"
	_, err := NewTokenCipher(cfg)
	assert.Error(t, err)

	cfg.SecretKey.TokenCipher = hex.EncodeToString(make([]byte, 16))
	_, err = NewTokenCipher(cfg)
	assert.Error(t, err)
}
