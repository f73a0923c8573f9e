// Package sqlite provides the disk-backed implementation of driven.FrequencyStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// Counts live in a single word_counts table keyed by word. The table is
// declared WITHOUT ROWID, so rows are clustered on the key and iteration
// runs in word order. The schema is managed through versioned migrations
// stored in the migrations/ directory. Each migration is a pair of .up.sql
// and .down.sql files.
//
// # Writes
//
// Every increment is an atomic UPSERT. Increments are grouped into
// transactions of a configurable size; the open batch is committed before
// any read and when the store is closed.
//
// # Data Location
//
// A store opened with OpenScratch lives in a uniquely named file under the
// temporary directory and is deleted on Close. A store opened with Open
// keeps its file, so counts accumulate across runs.
//
// # Thread Safety
//
// A Store is owned by a single counting run and is not safe for concurrent use.
package sqlite
