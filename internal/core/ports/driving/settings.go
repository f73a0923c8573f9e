package driving

import "github.com/custodia-labs/wordfreq/internal/core/domain"

// SettingsService resolves application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults applied
	// for anything the configuration does not set.
	Get() (*domain.Settings, error)
}
