package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveReadDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("contact.csv", []byte("a,b\n")))
	data, err := store.Read("contact.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	files, err := store.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "contact.csv", files[0].Name)

	require.NoError(t, store.Delete("contact.csv"))
	require.NoError(t, store.Delete("contact.csv"))
	_, err = store.Read("contact.csv")
	assert.Error(t, err)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.csv", "/etc/passwd", "."} {
		assert.ErrorIs(t, store.Save(name, []byte("x")), ErrInvalidName, name)
	}
}

func TestLocalStorageCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("old.json", []byte("{}")))
	require.NoError(t, store.Save("new.json", []byte("{}")))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.json"), past, past))

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"old.json"}, deleted)

	files, err := store.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.json", files[0].Name)
}
