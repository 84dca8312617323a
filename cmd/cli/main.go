// Package main is the entry point for the sales-economics CLI.
package main

import (
	"os"

	"sales-economics/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
