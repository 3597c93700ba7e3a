// Package session persists the sealed authentication session in the local
// state database.
package session

import "context"

// Sealed is the encrypted session blob as stored: AEAD ciphertext plus the
// nonce it was sealed with. Sealing and opening happen above this layer.
type Sealed struct {
	Ciphertext []byte
	Nonce      []byte
}

// Repository describes persistence for the single saved session.
type Repository interface {
	// Save stores the sealed session, replacing any previous one.
	Save(ctx context.Context, sealed Sealed) error

	// Load returns the sealed session, or common.ErrorNoSession when
	// nothing is saved.
	Load(ctx context.Context) (*Sealed, error)

	// Clear removes the saved session. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
