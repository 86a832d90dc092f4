// Package cipher seals chat message bodies with a per-chat key.
// A sealed text is "<ciphertext hex>:<nonce hex>" so it can be opened
// without any state other than the key.
package cipher

import (
	aead "crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"chat-app/errors"

	"golang.org/x/crypto/chacha20poly1305"
)

const separator = ":"

// GenerateKey returns a fresh random key, hex encoded.
func GenerateKey() (string, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("key generation failed: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Encrypt seals plaintext with a random 24-byte nonce (XChaCha20-Poly1305).
func Encrypt(plaintext, key string) (string, error) {
	sealer, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, sealer.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce generation failed: %w", err)
	}
	sealed := sealer.Seal(nil, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed) + separator + hex.EncodeToString(nonce), nil
}

// Decrypt opens a text produced by Encrypt.
// Any malformed part or a key mismatch returns errors.ErrDecryption.
func Decrypt(ciphertext, key string) (string, error) {
	opener, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	sealedHex, nonceHex, ok := strings.Cut(ciphertext, separator)
	if !ok {
		return "", fmt.Errorf("missing nonce: %w", errors.ErrDecryption)
	}
	sealed, err := hex.DecodeString(sealedHex)
	if err != nil {
		return "", fmt.Errorf("malformed ciphertext: %w", errors.ErrDecryption)
	}
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil || len(nonce) != opener.NonceSize() {
		return "", fmt.Errorf("malformed nonce: %w", errors.ErrDecryption)
	}
	plain, err := opener.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("authentication failed: %w", errors.ErrDecryption)
	}
	return string(plain), nil
}

func newAEAD(key string) (aead.AEAD, error) {
	raw, err := hex.DecodeString(key)
	if err != nil || len(raw) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("malformed key: %w", errors.ErrDecryption)
	}
	sealer, err := chacha20poly1305.NewX(raw)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrDecryption)
	}
	return sealer, nil
}
