// Package main provides the rotodash CLI.
package main

import (
	"os"

	"github.com/dugout-labs/rotodash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
