package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

const (
	keySalt       = "vendordash.session.v1"
	keyIterations = 4096
	keyLength     = 32
)

// Cipher protects upstream tokens before they are written to storage.
type Cipher interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// AESGCMCipher encrypts values with AES-GCM using a key derived from the
// configured session secret.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCMCipher derives the encryption key from secret via PBKDF2.
func NewAESGCMCipher(secret string) (*AESGCMCipher, error) {
	key := pbkdf2.Key([]byte(secret), []byte(keySalt), keyIterations, keyLength, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}
	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext and encodes nonce plus ciphertext as base64.
func (c *AESGCMCipher) Seal(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decodes and decrypts a value produced by Seal.
func (c *AESGCMCipher) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	if len(raw) < c.aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}
	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plaintext), nil
}
