package driven

import (
	"context"
	"iter"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
)

// FrequencyStore accumulates word counts for a single counting run.
// Implementations are observationally interchangeable: they differ only in
// performance, durability and the order Iterate yields entries in.
// A store is owned by one caller and is not safe for concurrent use.
type FrequencyStore interface {
	// Increment adds one occurrence of key, inserting it with a count of 1
	// if it is not yet stored.
	Increment(ctx context.Context, key string) error

	// Get returns the count stored for key, or 0 if key is absent.
	Get(ctx context.Context, key string) (uint64, error)

	// Iterate yields every stored entry exactly once in an unspecified order.
	// An error is yielded at most once, as the final element.
	Iterate(ctx context.Context) iter.Seq2[domain.WordCount, error]

	// Close releases resources held by the store.
	Close() error
}

// FrequencyStoreFactory creates the frequency store for a run.
type FrequencyStoreFactory interface {
	// Create opens the store variant selected by opts.Mode.
	Create(ctx context.Context, opts domain.StoreOptions) (FrequencyStore, error)
}
