// Package main is the entry point for the create-module CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nestkit/create-module/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		code := cmd.ExitCodeFromError(err)

		// Only print if the command layer hasn't already printed it
		var exitErr *cmd.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, "Error:", err)
			if code == cmd.ExitUsageError {
				fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
			}
		}
		os.Exit(code)
	}
}
