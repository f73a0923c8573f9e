package memory

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/bits"

	"github.com/cespare/xxhash/v2"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driven"
	"github.com/custodia-labs/wordfreq/internal/logger"
)

// Ensure HashTable implements the interface.
var _ driven.FrequencyStore = (*HashTable)(nil)

const (
	// DefaultInitialCapacity is the slot count of a new table.
	DefaultInitialCapacity = 16

	// DefaultMaxLoadFactor is the occupancy ratio a table never exceeds.
	DefaultMaxLoadFactor = 0.7

	// maxCapacity bounds growth so that slot indexes and sizes stay in int range.
	maxCapacity = 1 << (bits.UintSize - 2)
)

var errClosed = errors.New("hash table closed")

// slot is one cell of the table. An unused slot is Empty; there are no
// deletions and therefore no tombstones.
type slot struct {
	key   string
	count uint64
	used  bool
}

// HashTable is an open-addressing word counter using linear probing.
//
// Capacity is always a power of two and the number of occupied slots never
// exceeds capacity × max load factor. The load factor is below 1, so every
// probe sequence reaches an Empty slot and terminates.
//
// HashTable is not safe for concurrent use.
type HashTable struct {
	slots         []slot
	size          int
	maxLoadFactor float64
	maxCapacity   int
	resizes       int
}

// Option configures a HashTable.
type Option func(*HashTable) error

// WithInitialCapacity sets the starting slot count, rounded up to a power of two.
func WithInitialCapacity(n int) Option {
	return func(t *HashTable) error {
		if n <= 0 || n > t.maxCapacity {
			return fmt.Errorf("%w: initial capacity %d out of range", domain.ErrInvalidInput, n)
		}
		t.slots = make([]slot, nextPowerOfTwo(n))
		return nil
	}
}

// WithMaxLoadFactor sets the occupancy ratio that triggers a resize.
func WithMaxLoadFactor(f float64) Option {
	return func(t *HashTable) error {
		if f <= 0 || f >= 1 {
			return fmt.Errorf("%w: max load factor %v not in (0, 1)", domain.ErrInvalidInput, f)
		}
		t.maxLoadFactor = f
		return nil
	}
}

// NewHashTable creates an empty table.
func NewHashTable(opts ...Option) (*HashTable, error) {
	t := &HashTable{
		maxLoadFactor: DefaultMaxLoadFactor,
		maxCapacity:   maxCapacity,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if t.slots == nil {
		t.slots = make([]slot, DefaultInitialCapacity)
	}
	return t, nil
}

// Increment adds one occurrence of key.
func (t *HashTable) Increment(_ context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	if t.slots == nil {
		return errClosed
	}

	i, found := t.probe(key)
	if found {
		t.slots[i].count++
		return nil
	}

	if t.exceedsLoad(t.size+1, len(t.slots)) {
		if err := t.grow(t.size + 1); err != nil {
			return err
		}
		i, _ = t.probe(key)
	}

	t.slots[i] = slot{key: key, count: 1, used: true}
	t.size++
	return nil
}

// Get returns the count for key, or 0 if key is absent.
func (t *HashTable) Get(_ context.Context, key string) (uint64, error) {
	if t.slots == nil {
		return 0, errClosed
	}
	if i, found := t.probe(key); found {
		return t.slots[i].count, nil
	}
	return 0, nil
}

// Iterate yields every entry in bucket order.
func (t *HashTable) Iterate(_ context.Context) iter.Seq2[domain.WordCount, error] {
	return func(yield func(domain.WordCount, error) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if !s.used {
				continue
			}
			if !yield(domain.WordCount{Word: s.key, Count: s.count}, nil) {
				return
			}
		}
	}
}

// Close drops the slots. The table must not be used afterwards.
func (t *HashTable) Close() error {
	t.slots = nil
	t.size = 0
	return nil
}

// Len returns the number of distinct keys.
func (t *HashTable) Len() int {
	return t.size
}

// Capacity returns the current number of slots.
func (t *HashTable) Capacity() int {
	return len(t.slots)
}

// Resizes returns how many times the table has grown.
func (t *HashTable) Resizes() int {
	return t.resizes
}

// probe walks the linear probe sequence for key. It returns the slot holding
// key and true, or the first Empty slot and false.
func (t *HashTable) probe(key string) (int, bool) {
	mask := uint64(len(t.slots) - 1)
	for i := xxhash.Sum64String(key) & mask; ; i = (i + 1) & mask {
		s := &t.slots[i]
		if !s.used {
			return int(i), false
		}
		if s.key == key {
			return int(i), true
		}
	}
}

func (t *HashTable) exceedsLoad(occupied, capacity int) bool {
	return float64(occupied) > float64(capacity)*t.maxLoadFactor
}

// grow doubles capacity until want entries fit under the load factor, then
// rehashes every occupied slot. Counts move unchanged. If the target capacity
// is out of range the table is left untouched.
func (t *HashTable) grow(want int) error {
	capacity := len(t.slots)
	for t.exceedsLoad(want, capacity) {
		if capacity >= t.maxCapacity {
			return fmt.Errorf("%w: cannot hold %d keys", domain.ErrCapacityExceeded, want)
		}
		capacity <<= 1
	}

	old := t.slots
	t.slots = make([]slot, capacity)
	for i := range old {
		if !old[i].used {
			continue
		}
		j, _ := t.probe(old[i].key)
		t.slots[j] = old[i]
	}
	t.resizes++

	logger.Debug("hash table resized: %d -> %d slots (%d keys)", len(old), capacity, t.size)
	return nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
