package service

// TokenSealer encrypts bearer tokens before they reach a token store.
type TokenSealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}
