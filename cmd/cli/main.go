// Package main is the entry point for the homeload CLI.
package main

import (
	"os"

	"home-load/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
