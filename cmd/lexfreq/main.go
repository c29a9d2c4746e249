// Command lexfreq generates frequency-ranked unigram and bigram
// reports for a folder of documents.
package main

import (
	"os"

	"github.com/custodia-labs/lexfreq-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
