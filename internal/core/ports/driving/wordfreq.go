package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
)

// WordFrequencyService counts words and ranks the most frequent ones.
type WordFrequencyService interface {
	// CountFile counts the words of the file at path.
	CountFile(ctx context.Context, path string, opts domain.CountOptions) (*domain.Report, error)

	// Count counts the words read from r.
	Count(ctx context.Context, r io.Reader, opts domain.CountOptions) (*domain.Report, error)
}
