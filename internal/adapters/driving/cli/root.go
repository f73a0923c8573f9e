// Package cli provides the wordfreq command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordfreq/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wordfreq/internal/adapters/driven/storage"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driving"
	"github.com/custodia-labs/wordfreq/internal/core/services"
	"github.com/custodia-labs/wordfreq/internal/logger"
)

// Services used by the commands. Execute wires the defaults; tests may
// install their own before running a command.
var (
	wordFreqService driving.WordFrequencyService
	settingsService driving.SettingsService
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "wordfreq [file]",
	Short: "Report the most frequent words in a text file",
	Long: `Counts every word in a text file and prints the most frequent ones,
one "<count> <word>" line each, ranked by count and then alphabetically.

A word is a run of letters and digits, compared case-insensitively.
Counting happens either in an in-memory hash table (the default) or in a
SQLite database on disk for inputs too large to count in memory. Both
produce identical output.`,
	Example: `  wordfreq document.txt
  wordfreq --mode sqlite big-corpus.txt
  wordfreq --db ~/counts.db chapter1.txt`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return wireServices()
	},
	RunE: runCount,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.wordfreq)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// wireServices creates the default services for anything not already set.
func wireServices() error {
	if settingsService == nil {
		configStore, err := file.NewConfigStore(configDir)
		if err != nil {
			return err
		}
		logger.Debug("Config: %s", configStore.Path())
		settingsService = services.NewSettingsService(configStore)
	}
	if wordFreqService == nil {
		wordFreqService = services.NewWordFrequencyService(storage.NewFactory())
	}
	return nil
}
