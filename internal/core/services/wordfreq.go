package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driven"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driving"
	"github.com/custodia-labs/wordfreq/internal/logger"
	"github.com/custodia-labs/wordfreq/internal/tokenizer"
)

// Ensure WordFrequencyService implements the interface.
var _ driving.WordFrequencyService = (*WordFrequencyService)(nil)

// WordFrequencyService runs the counting pipeline: tokens from the input are
// counted in a frequency store, then the store is ranked.
type WordFrequencyService struct {
	stores driven.FrequencyStoreFactory
}

// NewWordFrequencyService creates a new word frequency service.
func NewWordFrequencyService(stores driven.FrequencyStoreFactory) *WordFrequencyService {
	return &WordFrequencyService{stores: stores}
}

// CountFile counts the words of the file at path.
// A missing, unreadable or non-regular input yields domain.ErrInputUnreadable.
func (s *WordFrequencyService) CountFile(
	ctx context.Context, path string, opts domain.CountOptions,
) (*domain.Report, error) {
	logger.Section("Input")
	logger.Debug("Path: %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInputUnreadable, path)
	}
	logger.Debug("Size: %d bytes", info.Size())

	return s.Count(ctx, f, opts)
}

// Count counts the words read from r. The store is closed before Count
// returns, on success and on every error path.
func (s *WordFrequencyService) Count(
	ctx context.Context, r io.Reader, opts domain.CountOptions,
) (report *domain.Report, err error) {
	if s.stores == nil {
		return nil, errors.New("frequency store factory not configured")
	}
	defer logger.Timed("Count")()

	storeOpts := opts.Store
	if storeOpts.Mode == "" {
		storeOpts.Mode = domain.StoreModeHashTable
	}
	topK := opts.TopK
	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	store, err := s.stores.Create(ctx, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("creating frequency store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			report, err = nil, fmt.Errorf("closing frequency store: %w", closeErr)
		}
	}()

	logger.Section("Counting")
	tok := tokenizer.New(r)
	var total uint64
	for tok.Scan() {
		if err := store.Increment(ctx, tok.Token()); err != nil {
			return nil, fmt.Errorf("counting %q: %w", tok.Token(), err)
		}
		total++
	}
	if err := tok.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err)
	}
	logger.Debug("Lines: %d, tokens: %d", tok.Lines(), total)

	logger.Section("Ranking")
	unique := 0
	all := store.Iterate(ctx)
	counted := func(yield func(domain.WordCount, error) bool) {
		for wc, err := range all {
			if err == nil {
				unique++
			}
			if !yield(wc, err) {
				return
			}
		}
	}

	entries, err := SelectTop(counted, topK)
	if err != nil {
		return nil, fmt.Errorf("ranking counts: %w", err)
	}
	logger.Debug("Unique words: %d, ranked: %d (top %d)", unique, len(entries), topK)

	return &domain.Report{
		Mode:        storeOpts.Mode,
		Entries:     entries,
		TotalTokens: total,
		UniqueWords: unique,
	}, nil
}
