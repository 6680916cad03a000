package main

// Exit codes for the veil CLI.
const (
	ExitOK          = 0 // Rendered or scanned successfully.
	ExitInvalidArgs = 1 // Invalid arguments or malformed configuration.
	ExitReadFailure = 2 // Input file could not be read.
)

// exitCodeError carries a specific process exit code out of a command.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }
