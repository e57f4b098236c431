package storage_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parentsfood/shopkit/internal/storage"
)

func TestLocalStorage_PutGetRoundtrip(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Put("shopping-cart", []byte(`[{"productId":"p1"}]`)))

	data, err := st.Get("shopping-cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"productId":"p1"}]`, string(data))
}

func TestLocalStorage_PutOverwritesWholesale(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Put("k", []byte("first value, longer")))
	require.NoError(t, st.Put("k", []byte("second")))

	data, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalStorage_GetMissingKey(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = st.Get("never-written")
	assert.True(t, storage.IsNotFound(err))
}

func TestIsNotFound_MatchesWrappedError(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = st.Get("never-written")
	require.Error(t, err)
	wrapped := fmt.Errorf("loading cart: %w", err)

	assert.True(t, storage.IsNotFound(wrapped))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Put("k", []byte("v")))
	require.NoError(t, st.Delete("k"))
	require.NoError(t, st.Delete("k"))

	exists, err := st.Exists("k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_RejectsPathEscapingKeys(t *testing.T) {
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, st.Put("../escape", []byte("v")))
	assert.Error(t, st.Put("a/b", []byte("v")))
	assert.Error(t, st.Put("", []byte("v")))
}

func TestLocalStorage_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, st.Put("k", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", filepath.Base(entries[0].Name()))
}

func TestMemoryStorage_CopiesValues(t *testing.T) {
	st := storage.NewMemoryStorage()

	value := []byte("original")
	require.NoError(t, st.Put("k", value))
	value[0] = 'X'

	data, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}
