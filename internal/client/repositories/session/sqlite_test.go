package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/nmatveev/dockeep/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key        TEXT PRIMARY KEY,
  ciphertext BLOB NOT NULL,
  nonce      BLOB NOT NULL,
  saved_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestSaveAndLoad(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, Sealed{Ciphertext: []byte{0x01}, Nonce: []byte{0x02}}))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, got.Ciphertext)
	assert.Equal(t, []byte{0x02}, got.Nonce)
}

func TestLoad_EmptyStore(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, common.ErrorNoSession)
}

func TestSave_ReplacesPrevious(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, Sealed{Ciphertext: []byte("old"), Nonce: []byte("n1")}))
	require.NoError(t, r.Save(ctx, Sealed{Ciphertext: []byte("new"), Nonce: []byte("n2")}))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got.Ciphertext)
	assert.Equal(t, []byte("n2"), got.Nonce)
}

func TestClear_RemovesAndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, Sealed{Ciphertext: []byte{0x01}, Nonce: []byte{0x02}}))
	require.NoError(t, r.Clear(ctx))

	_, err := r.Load(ctx)
	require.ErrorIs(t, err, common.ErrorNoSession)

	require.NoError(t, r.Clear(ctx))
}
