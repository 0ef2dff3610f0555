// Package main is the entry point for the when CLI tool.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/aidanlsb/when/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
