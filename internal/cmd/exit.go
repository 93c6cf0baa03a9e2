// Package cmd provides the create-module command.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the module was generated.
	ExitSuccess = 0

	// ExitGeneralError indicates generation failed (invalid name, missing
	// host project or container directory, filesystem errors).
	ExitGeneralError = 1

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 2
)
