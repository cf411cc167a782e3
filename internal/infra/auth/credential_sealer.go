package auth

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"docgate/config"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
)

const sealedPrefix = "sealed:v1:"

// chachaSealer is a concrete implementation of the CredentialSealer interface using XChaCha20-Poly1305.
type chachaSealer struct {
	aead cipher.AEAD // Nil when no key is configured; sealing is then a no-op.
}

// NewCredentialSealer is the constructor for chachaSealer.
// Without a configured key it returns a sealer that stores credentials as given.
func NewCredentialSealer(cfg *config.Config) (service.CredentialSealer, error) {
	var encryption *config.CredentialEncryptionConfig
	if cfg != nil {
		encryption = cfg.CredentialEncryption
	}

	key, err := encryption.DecodeKey()
	if err != nil {
		return nil, errors.Wrap(err, "credential encryption key")
	}

	if key == nil {
		return &chachaSealer{}, nil
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "init cipher")
	}

	return &chachaSealer{aead: aead}, nil
}

// Seal encrypts plaintext with a random nonce. The empty string is never sealed.
func (s *chachaSealer) Seal(plaintext string) (string, error) {
	if s.aead == nil || plaintext == "" {
		return plaintext, nil
	}

	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return sealedPrefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Values without the sealed prefix are
// returned unchanged so rows written before encryption was enabled stay readable.
func (s *chachaSealer) Open(value string) (string, error) {
	encoded, ok := strings.CutPrefix(value, sealedPrefix)
	if !ok {
		return value, nil
	}

	if s.aead == nil {
		return "", errors.New("sealed credential found but no encryption key configured")
	}

	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrap(err, "decode sealed credential")
	}

	if len(raw) < s.aead.NonceSize() {
		return "", errors.New("sealed credential too short")
	}

	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(err, "open sealed credential")
	}

	return string(plaintext), nil
}
