package services

import (
	"fmt"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driven"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStoreMode       = "store.mode"
	keyStorePath       = "store.path"
	keyStoreBatchSize  = "store.batch_size"
	keyTableCapacity   = "hashtable.initial_capacity"
	keyTableLoadFactor = "hashtable.max_load_factor"
	keyReportTop       = "report.top"
)

// SettingsService resolves application settings from configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// A nil configStore yields the default settings.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Values present in the
// configuration override the defaults and must be valid.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Store: domain.StoreSettings{
			Mode:      domain.StoreMode(s.getString(keyStoreMode, defaults.Store.Mode.String())),
			Path:      s.getString(keyStorePath, defaults.Store.Path),
			BatchSize: s.getInt(keyStoreBatchSize, defaults.Store.BatchSize),
		},
		HashTable: domain.HashTableSettings{
			InitialCapacity: s.getInt(keyTableCapacity, defaults.HashTable.InitialCapacity),
			MaxLoadFactor:   s.getFloat(keyTableLoadFactor, defaults.HashTable.MaxLoadFactor),
		},
		Report: domain.ReportSettings{
			Top: s.getInt(keyReportTop, defaults.Report.Top),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", s.configPath(), err)
	}
	return settings, nil
}

func (s *SettingsService) has(key string) bool {
	if s.configStore == nil {
		return false
	}
	_, ok := s.configStore.Get(key)
	return ok
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if !s.has(key) {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if !s.has(key) {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if !s.has(key) {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) configPath() string {
	if s.configStore == nil {
		return "defaults"
	}
	return s.configStore.Path()
}
