// Command wordfreq reports the most frequent words in a text file.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/wordfreq/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wordfreq: %v\n", err)
		os.Exit(1)
	}
}
