// Package storage provides the factory that selects a frequency store variant.
package storage

import (
	"context"
	"fmt"

	"github.com/custodia-labs/wordfreq/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordfreq/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wordfreq/internal/core/domain"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driven"
	"github.com/custodia-labs/wordfreq/internal/logger"
)

// Ensure Factory implements the interface.
var _ driven.FrequencyStoreFactory = (*Factory)(nil)

// Factory creates frequency stores from options.
type Factory struct {
	// ScratchDir holds scratch SQLite databases. Empty means the system
	// temporary directory.
	ScratchDir string
}

// NewFactory creates a store factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create opens the store selected by opts.Mode. Failure to open the SQLite
// store is returned as is; it never falls back to the hash table.
func (f *Factory) Create(ctx context.Context, opts domain.StoreOptions) (driven.FrequencyStore, error) {
	logger.Info("Frequency store: %s", opts.Mode.Description())

	switch opts.Mode {
	case domain.StoreModeHashTable:
		var tableOpts []memory.Option
		if opts.InitialCapacity > 0 {
			tableOpts = append(tableOpts, memory.WithInitialCapacity(opts.InitialCapacity))
		}
		if opts.MaxLoadFactor != 0 {
			tableOpts = append(tableOpts, memory.WithMaxLoadFactor(opts.MaxLoadFactor))
		}
		table, err := memory.NewHashTable(tableOpts...)
		if err != nil {
			return nil, err
		}
		return table, nil

	case domain.StoreModeSQLite:
		sqliteOpts := sqlite.Options{BatchSize: opts.BatchSize}
		var (
			store *sqlite.Store
			err   error
		)
		if opts.Path != "" {
			store, err = sqlite.Open(ctx, opts.Path, sqliteOpts)
		} else {
			store, err = sqlite.OpenScratch(ctx, f.ScratchDir, sqliteOpts)
		}
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, opts.Mode)
	}
}
