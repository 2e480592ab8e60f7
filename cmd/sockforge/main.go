// Package main is the entry point for the sockforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sockforge/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
