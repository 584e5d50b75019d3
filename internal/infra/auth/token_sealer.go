package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"walletportal/internal/domain/service"
)

// ErrInvalidSealedToken is returned when a stored value cannot be opened with the configured key.
var ErrInvalidSealedToken = errors.New("sealed token is invalid")

// chachaSealer encrypts tokens with XChaCha20-Poly1305. Output is base64(nonce || ciphertext).
type chachaSealer struct {
	key []byte
}

// NewTokenSealer builds a sealer from a 32-byte key given in hex or standard base64.
func NewTokenSealer(encodedKey string) (service.TokenSealer, error) {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return nil, err
	}

	return &chachaSealer{key: key}, nil
}

func decodeKey(encoded string) ([]byte, error) {
	if key, err := hex.DecodeString(encoded); err == nil && len(key) == chacha20poly1305.KeySize {
		return key, nil
	}
	if key, err := base64.StdEncoding.DecodeString(encoded); err == nil && len(key) == chacha20poly1305.KeySize {
		return key, nil
	}

	return nil, errors.Errorf("token seal key must decode to %d bytes (hex or base64)", chacha20poly1305.KeySize)
}

// Seal encrypts plaintext under a fresh random nonce.
func (s *chachaSealer) Seal(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to init cipher")
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to read nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (s *chachaSealer) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrInvalidSealedToken
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to init cipher")
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrInvalidSealedToken
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidSealedToken
	}

	return string(plaintext), nil
}
