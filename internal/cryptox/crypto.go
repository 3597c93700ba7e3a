// Package cryptox seals the locally persisted session so a copied state
// database alone does not leak the access token. The sealing key is derived
// from a random secret kept in a separate key file next to the database.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"
)

const (
	secretSize = 32
	saltSize   = 16
	nonceSize  = 12
)

var ErrInvalidKeyFile = errors.New("invalid key file")

// DeriveKey derives a 32-byte AES key from a secret and salt using Argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// LoadOrCreateKeyFile returns the sealing key for the local store.
//
// On first use it generates a random secret and salt, writes them to path
// with 0600 permissions, and derives the key. On subsequent calls it reads
// the file back and re-derives the same key.
func LoadOrCreateKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != secretSize+saltSize {
			return nil, ErrInvalidKeyFile
		}
		return DeriveKey(data[:secretSize], data[secretSize:]), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	data = make([]byte, secretSize+saltSize)
	if _, err := rand.Read(data); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return DeriveKey(data[:secretSize], data[secretSize:]), nil
}

// Seal encrypts plaintext using AES-GCM with a fresh random nonce.
// The ciphertext and nonce are returned separately.
func Seal(plaintext []byte, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, nonceSize)
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

// Open decrypts ciphertext produced by Seal with the same key and nonce.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
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
