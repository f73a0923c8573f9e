package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordfreq/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordfreq/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wordfreq/internal/core/domain"
)

func TestFactory_CreateHashTable(t *testing.T) {
	f := NewFactory()

	store, err := f.Create(context.Background(), domain.StoreOptions{
		Mode:            domain.StoreModeHashTable,
		InitialCapacity: 100,
		MaxLoadFactor:   0.5,
	})
	require.NoError(t, err)
	defer store.Close()

	table, ok := store.(*memory.HashTable)
	require.True(t, ok, "expected *memory.HashTable, got %T", store)
	assert.Equal(t, 128, table.Capacity())
}

func TestFactory_CreateHashTableDefaults(t *testing.T) {
	store, err := NewFactory().Create(context.Background(), domain.StoreOptions{Mode: domain.StoreModeHashTable})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, memory.DefaultInitialCapacity, store.(*memory.HashTable).Capacity())
}

func TestFactory_InvalidHashTableOptions(t *testing.T) {
	store, err := NewFactory().Create(context.Background(), domain.StoreOptions{
		Mode:          domain.StoreModeHashTable,
		MaxLoadFactor: 1.2,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, store)
}

func TestFactory_CreateSQLiteScratch(t *testing.T) {
	f := &Factory{ScratchDir: t.TempDir()}

	store, err := f.Create(context.Background(), domain.StoreOptions{Mode: domain.StoreModeSQLite})
	require.NoError(t, err)

	s, ok := store.(*sqlite.Store)
	require.True(t, ok, "expected *sqlite.Store, got %T", store)
	assert.Equal(t, f.ScratchDir, filepath.Dir(s.Path()))

	require.NoError(t, store.Close())
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestFactory_CreateSQLiteAtPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.db")

	store, err := NewFactory().Create(context.Background(), domain.StoreOptions{
		Mode: domain.StoreModeSQLite,
		Path: path,
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.FileExists(t, path)
}

func TestFactory_SQLiteFailureDoesNotFallBack(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	store, err := NewFactory().Create(context.Background(), domain.StoreOptions{
		Mode: domain.StoreModeSQLite,
		Path: filepath.Join(blocker, "counts.db"),
	})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Nil(t, store)
}

func TestFactory_UnsupportedMode(t *testing.T) {
	store, err := NewFactory().Create(context.Background(), domain.StoreOptions{Mode: "bolt"})

	assert.ErrorIs(t, err, domain.ErrUnsupportedMode)
	assert.Nil(t, store)
}
