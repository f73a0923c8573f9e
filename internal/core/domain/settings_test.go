package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, StoreModeHashTable, s.Store.Mode)
	assert.Empty(t, s.Store.Path)
	assert.Equal(t, 10000, s.Store.BatchSize)
	assert.Equal(t, 16, s.HashTable.InitialCapacity)
	assert.InDelta(t, 0.7, s.HashTable.MaxLoadFactor, 1e-9)
	assert.Equal(t, DefaultTopK, s.Report.Top)
	require.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{"unknown mode", func(s *Settings) { s.Store.Mode = "btree" }, ErrUnsupportedMode},
		{"zero batch", func(s *Settings) { s.Store.BatchSize = 0 }, ErrInvalidInput},
		{"negative capacity", func(s *Settings) { s.HashTable.InitialCapacity = -1 }, ErrInvalidInput},
		{"load factor one", func(s *Settings) { s.HashTable.MaxLoadFactor = 1 }, ErrInvalidInput},
		{"load factor zero", func(s *Settings) { s.HashTable.MaxLoadFactor = 0 }, ErrInvalidInput},
		{"zero top", func(s *Settings) { s.Report.Top = 0 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tt.wantErr)
		})
	}
}

func TestSettings_CountOptions(t *testing.T) {
	s := DefaultSettings()
	s.Store.Mode = StoreModeSQLite
	s.Store.Path = "/tmp/counts.db"
	s.Report.Top = 5

	opts := s.CountOptions()

	assert.Equal(t, StoreModeSQLite, opts.Store.Mode)
	assert.Equal(t, "/tmp/counts.db", opts.Store.Path)
	assert.Equal(t, 10000, opts.Store.BatchSize)
	assert.Equal(t, 16, opts.Store.InitialCapacity)
	assert.Equal(t, 5, opts.TopK)
}
