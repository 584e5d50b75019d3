package auth

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSealKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestTokenSealer_RoundTrip(t *testing.T) {
	sealer, err := NewTokenSealer(testSealKeyHex)
	require.NoError(t, err)

	sealed, err := sealer.Seal("tok_abc")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "tok_abc")

	again, err := sealer.Seal("tok_abc")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "every seal uses a fresh nonce")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "tok_abc", opened)
}

func TestTokenSealer_KeyEncodings(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "hex", key: testSealKeyHex},
		{name: "base64", key: base64.StdEncoding.EncodeToString(raw)},
		{name: "short", key: "0011", wantErr: true},
		{name: "empty", key: "", wantErr: true},
		{name: "passphrase", key: strings.Repeat("x", 32), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealer, err := NewTokenSealer(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, sealer)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, sealer)
		})
	}
}

func TestTokenSealer_OpenRejectsTampering(t *testing.T) {
	sealer, err := NewTokenSealer(testSealKeyHex)
	require.NoError(t, err)
	otherKey, err := NewTokenSealer(strings.Repeat("ff", 32))
	require.NoError(t, err)

	sealed, err := sealer.Seal("tok_abc")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	for name, value := range map[string]string{
		"not base64": "%%%",
		"too short":  "AAAA",
		"tampered":   tampered,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := sealer.Open(value)
			assert.ErrorIs(t, err, ErrInvalidSealedToken)
		})
	}

	_, err = otherKey.Open(sealed)
	assert.ErrorIs(t, err, ErrInvalidSealedToken)
}
