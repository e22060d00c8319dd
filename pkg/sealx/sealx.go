// Package sealx provides authenticated encryption for small payloads such as
// cookie values, under a process-wide master key.
package sealx

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrOpen reports a payload that failed authentication or was malformed.
// Callers treat sealed cookies that fail to open the same as absent ones, so
// the error carries no detail.
var ErrOpen = errors.New("sealx: cannot open payload")

var (
	keyOnce sync.Once
	key     []byte
	keyErr  error
	keyPath string
)

// SetMasterKeyPath configures where the master key is loaded from. Must be
// called before the first Seal/Open.
func SetMasterKeyPath(path string) {
	keyPath = path
}

// loadMasterKey derives a 32-byte key from, in order of preference:
//  1. the file configured via SetMasterKeyPath
//  2. the GATEWAY_MASTER_KEY environment variable
//  3. a fresh random key (development only: sealed values do not survive a
//     restart, which forces re-login)
func loadMasterKey() ([]byte, error) {
	var material []byte

	switch {
	case keyPath != "":
		data, err := os.ReadFile(keyPath)
		if err != nil {
			return nil, fmt.Errorf("sealx: read master key file: %w", err)
		}
		material = data
	case os.Getenv("GATEWAY_MASTER_KEY") != "":
		material = []byte(os.Getenv("GATEWAY_MASTER_KEY"))
	default:
		material = make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(material); err != nil {
			return nil, fmt.Errorf("sealx: generate ephemeral master key: %w", err)
		}
	}

	sum := sha256.Sum256(material)
	return sum[:], nil
}

func masterKey() ([]byte, error) {
	keyOnce.Do(func() {
		key, keyErr = loadMasterKey()
	})
	return key, keyErr
}

// Seal encrypts plaintext with ChaCha20-Poly1305 under the master key and
// returns a base64url string carrying nonce and ciphertext. Safe for cookie
// values.
func Seal(plaintext []byte) (string, error) {
	k, err := masterKey()
	if err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.New(k)
	if err != nil {
		return "", fmt.Errorf("sealx: init cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("sealx: generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Any tampering, truncation or key mismatch yields
// ErrOpen.
func Open(value string) ([]byte, error) {
	k, err := masterKey()
	if err != nil {
		return nil, err
	}

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, ErrOpen
	}

	aead, err := chacha20poly1305.New(k)
	if err != nil {
		return nil, fmt.Errorf("sealx: init cipher: %w", err)
	}

	if len(raw) < aead.NonceSize() {
		return nil, ErrOpen
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrOpen
	}
	return plaintext, nil
}
