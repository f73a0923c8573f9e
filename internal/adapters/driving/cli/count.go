package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
)

var (
	countMode   string
	countDBPath string
	countTop    int
	countJSON   bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&countMode, "mode", "m", "", "frequency store: hashtable or sqlite (default hashtable)")
	flags.StringVar(&countDBPath, "db", "", "SQLite database that keeps counts across runs (implies --mode sqlite)")
	flags.IntVarP(&countTop, "top", "n", domain.DefaultTopK, "number of words to report")
	flags.BoolVar(&countJSON, "json", false, "output the report as JSON")
}

func runCount(cmd *cobra.Command, args []string) error {
	if wordFreqService == nil || settingsService == nil {
		return errors.New("word frequency service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, settings); err != nil {
		return err
	}

	report, err := wordFreqService.CountFile(cmd.Context(), args[0], settings.CountOptions())
	if err != nil {
		return err
	}

	if countJSON {
		return outputReportJSON(cmd, report)
	}
	return outputReport(cmd, report)
}

// applyFlags overrides configured settings with flags given on the command line.
func applyFlags(cmd *cobra.Command, settings *domain.Settings) error {
	flags := cmd.Flags()

	if flags.Changed("mode") {
		settings.Store.Mode = domain.StoreMode(countMode)
	}
	if flags.Changed("db") {
		if flags.Changed("mode") && settings.Store.Mode != domain.StoreModeSQLite {
			return fmt.Errorf("%w: --db requires --mode sqlite", domain.ErrInvalidInput)
		}
		settings.Store.Mode = domain.StoreModeSQLite
		settings.Store.Path = countDBPath
	}
	if flags.Changed("top") {
		settings.Report.Top = countTop
	}

	return settings.Validate()
}

// outputReport prints one "<count> <word>" line per ranked entry and nothing else.
func outputReport(cmd *cobra.Command, report *domain.Report) error {
	out := cmd.OutOrStdout()
	for _, e := range report.Entries {
		if _, err := fmt.Fprintf(out, "%d %s\n", e.Count, e.Word); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

func outputReportJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
