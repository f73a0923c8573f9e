package domain

import "fmt"

// Settings is the resolved configuration for a counting run.
type Settings struct {
	Store     StoreSettings
	HashTable HashTableSettings
	Report    ReportSettings
}

// StoreSettings selects and configures the frequency store.
type StoreSettings struct {
	Mode      StoreMode
	Path      string
	BatchSize int
}

// HashTableSettings tunes the in-memory hash table.
type HashTableSettings struct {
	InitialCapacity int
	MaxLoadFactor   float64
}

// ReportSettings controls the ranked output.
type ReportSettings struct {
	Top int
}

// DefaultSettings returns settings with sensible defaults.
// The in-memory table is the default store; SQLite uses a scratch file.
func DefaultSettings() Settings {
	return Settings{
		Store: StoreSettings{
			Mode:      StoreModeHashTable,
			BatchSize: 10000,
		},
		HashTable: HashTableSettings{
			InitialCapacity: 16,
			MaxLoadFactor:   0.7,
		},
		Report: ReportSettings{
			Top: DefaultTopK,
		},
	}
}

// Validate checks that every setting is usable.
func (s Settings) Validate() error {
	if !s.Store.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, s.Store.Mode)
	}
	if s.Store.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidInput, s.Store.BatchSize)
	}
	if s.HashTable.InitialCapacity <= 0 {
		return fmt.Errorf("%w: initial capacity must be positive, got %d",
			ErrInvalidInput, s.HashTable.InitialCapacity)
	}
	if s.HashTable.MaxLoadFactor <= 0 || s.HashTable.MaxLoadFactor >= 1 {
		return fmt.Errorf("%w: max load factor must be in (0, 1), got %v",
			ErrInvalidInput, s.HashTable.MaxLoadFactor)
	}
	if s.Report.Top <= 0 {
		return fmt.Errorf("%w: top must be positive, got %d", ErrInvalidInput, s.Report.Top)
	}
	return nil
}

// CountOptions converts settings into options for a counting run.
func (s Settings) CountOptions() CountOptions {
	return CountOptions{
		Store: StoreOptions{
			Mode:            s.Store.Mode,
			Path:            s.Store.Path,
			BatchSize:       s.Store.BatchSize,
			InitialCapacity: s.HashTable.InitialCapacity,
			MaxLoadFactor:   s.HashTable.MaxLoadFactor,
		},
		TopK: s.Report.Top,
	}
}
