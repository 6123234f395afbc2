// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including the exit command
	// and end of input. Errors inside the menu loop are recovered locally
	// and never surface as exit codes.
	Success = 0

	// UserError indicates bad command-line arguments.
	UserError = 1

	// ConfigError indicates an unreadable or invalid config file.
	ConfigError = 2
)
