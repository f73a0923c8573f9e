package domain

// StoreMode selects the frequency store used for a counting run.
type StoreMode string

// Available store modes.
const (
	// StoreModeHashTable counts in a custom open-addressing hash table.
	StoreModeHashTable StoreMode = "hashtable"

	// StoreModeSQLite counts in a disk-backed SQLite table.
	StoreModeSQLite StoreMode = "sqlite"
)

// IsValid returns true if the store mode is recognised.
func (m StoreMode) IsValid() bool {
	switch m {
	case StoreModeHashTable, StoreModeSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m StoreMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m StoreMode) Description() string {
	switch m {
	case StoreModeHashTable:
		return "Hash table (in memory)"
	case StoreModeSQLite:
		return "SQLite (on disk)"
	default:
		return "Unknown"
	}
}

// AllStoreModes returns all available store modes.
func AllStoreModes() []StoreMode {
	return []StoreMode{
		StoreModeHashTable,
		StoreModeSQLite,
	}
}

// StoreOptions configures the frequency store created for a run.
type StoreOptions struct {
	// Mode selects the store variant.
	Mode StoreMode

	// Path is the SQLite database file. Empty means a scratch database
	// that is removed when the store is closed.
	Path string

	// BatchSize is the number of SQLite writes grouped per transaction.
	BatchSize int

	// InitialCapacity is the starting slot count of the hash table.
	InitialCapacity int

	// MaxLoadFactor is the hash table occupancy ratio that forces a resize.
	MaxLoadFactor float64
}
