package legacy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/localnerve/salesdb/internal/legacy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStore(t *testing.T, content string) *legacy.FileStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "legacy-store.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := legacy.NewFileStore(path)
	require.NoError(t, err)
	return store
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store, err := legacy.NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	_, found, err := store.Read(legacy.KeyClients)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreReadsPlainValues(t *testing.T) {
	store := writeStore(t, `{"clients": [{"id": 1}]}`)

	raw, found, err := store.Read(legacy.KeyClients)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id": 1}]`, string(raw))
}

func TestFileStoreUnwrapsDoubleEncodedValues(t *testing.T) {
	// The key-value store held strings, so exports often carry JSON encoded
	// again as a string.
	store := writeStore(t, `{"clients": "[{\"id\": 1}]"}`)

	raw, found, err := store.Read(legacy.KeyClients)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id": 1}]`, string(raw))
}

func TestFileStoreNullValueIsAbsent(t *testing.T) {
	store := writeStore(t, `{"orders": null}`)

	_, found, err := store.Read(legacy.KeyOrders)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreRejectsMalformedDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy-store.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	_, err := legacy.NewFileStore(path)
	assert.Error(t, err)
}
