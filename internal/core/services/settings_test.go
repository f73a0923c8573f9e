package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
)

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	data map[string]any
}

func newMockConfigStore(data map[string]any) *mockConfigStore {
	if data == nil {
		data = make(map[string]any)
	}
	return &mockConfigStore{data: data}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.data[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "/mock/config.toml" }

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(nil))

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_NilConfigStore(t *testing.T) {
	settings, err := NewSettingsService(nil).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_GetOverrides(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(map[string]any{
		"store.mode":                 "sqlite",
		"store.path":                 "/data/counts.db",
		"store.batch_size":           int64(500),
		"hashtable.initial_capacity": int64(4096),
		"hashtable.max_load_factor":  0.5,
		"report.top":                 int64(10),
	}))

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StoreModeSQLite, settings.Store.Mode)
	assert.Equal(t, "/data/counts.db", settings.Store.Path)
	assert.Equal(t, 500, settings.Store.BatchSize)
	assert.Equal(t, 4096, settings.HashTable.InitialCapacity)
	assert.InDelta(t, 0.5, settings.HashTable.MaxLoadFactor, 1e-9)
	assert.Equal(t, 10, settings.Report.Top)
}

func TestSettingsService_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		wantErr error
	}{
		{"unknown mode", map[string]any{"store.mode": "redis"}, domain.ErrUnsupportedMode},
		{"zero top", map[string]any{"report.top": int64(0)}, domain.ErrInvalidInput},
		{"wrong type for top", map[string]any{"report.top": "twenty"}, domain.ErrInvalidInput},
		{"load factor too high", map[string]any{"hashtable.max_load_factor": 1.0}, domain.ErrInvalidInput},
		{"negative batch", map[string]any{"store.batch_size": int64(-5)}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := NewSettingsService(newMockConfigStore(tt.data)).Get()

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "/mock/config.toml")
			assert.Nil(t, settings)
		})
	}
}
