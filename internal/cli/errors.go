package cli

import "errors"

var (
	// ErrInvalidConfig is returned when flags, environment or config file
	// values do not pass validation.
	ErrInvalidConfig = errors.New("cli: invalid configuration")

	// ErrRenameFailures is returned when at least one file of a --files batch
	// was not renamed.
	ErrRenameFailures = errors.New("cli: some files were not renamed")
)
