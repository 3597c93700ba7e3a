package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nmatveev/dockeep/internal/common"
	"github.com/nmatveev/dockeep/internal/dbx"
)

// The session table is keyed so the schema can later hold more than one
// named profile; today there is exactly one.
const sessionKey = "session"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, sealed Sealed) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, ciphertext, nonce) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			ciphertext = excluded.ciphertext,
			nonce = excluded.nonce,
			saved_at = CURRENT_TIMESTAMP
	`, sessionKey, sealed.Ciphertext, sealed.Nonce)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Sealed, error) {
	var sealed Sealed
	err := r.db.QueryRowContext(ctx,
		`SELECT ciphertext, nonce FROM session WHERE key = ?`, sessionKey).
		Scan(&sealed.Ciphertext, &sealed.Nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &sealed, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, sessionKey)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
