package cli

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("wordfreq version {{.Version}}\n")
}
