package kvstore

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newMockBackend(t *testing.T) (*SQLBackend, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	backend := NewSQLBackend(sqlx.NewDb(db, "postgres"))
	return backend, mock, func() { db.Close() }
}

func TestSQLBackendGet(t *testing.T) {
	backend, mock, cleanup := newMockBackend(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("schoolPosts").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":1}]`))

	raw, err := backend.Get(context.Background(), "schoolPosts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(raw))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackendGetMissing(t *testing.T) {
	backend, mock, cleanup := newMockBackend(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := backend.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLBackendSetUpserts(t *testing.T) {
	backend, mock, cleanup := newMockBackend(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, $3)`)).
		WithArgs("contactMessages", `[]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, backend.Set(context.Background(), "contactMessages", []byte(`[]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackendKeysFiltersLikeWildcards(t *testing.T) {
	backend, mock, cleanup := newMockBackend(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key FROM kv_store WHERE key LIKE $1 ORDER BY key`)).
		WithArgs("autosave_%").
		WillReturnRows(sqlmock.NewRows([]string{"key"}).
			AddRow("autosave_contact_/contact").
			AddRow("autosaveXcontact"))

	keys, err := backend.Keys(context.Background(), "autosave_")
	require.NoError(t, err)
	assert.Equal(t, []string{"autosave_contact_/contact"}, keys)
}

func TestSQLBackendRemove(t *testing.T) {
	backend, mock, cleanup := newMockBackend(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_store WHERE key = $1`)).
		WithArgs("schoolPosts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, backend.Remove(context.Background(), "schoolPosts"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	backend := NewSQLBackend(db)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, backend.EnsureSchema(ctx))
	require.NoError(t, backend.Set(ctx, "k", []byte(`{"a":1}`)))
	require.NoError(t, backend.Set(ctx, "k", []byte(`{"a":2}`)))

	raw, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(raw))

	require.NoError(t, backend.Remove(ctx, "k"))
	_, err = backend.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
