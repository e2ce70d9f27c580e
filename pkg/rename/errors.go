package rename

import "errors"

// Sentinel errors for rename operations.
var (
	// ErrTargetExists is returned when the new name is already taken, either on
	// disk or by an earlier file of the same batch.
	ErrTargetExists = errors.New("rename: target already exists")

	// ErrSourceNotFound is returned when the file to rename does not exist.
	ErrSourceNotFound = errors.New("rename: source not found")

	// ErrEmptyName is returned when the name function produced nothing.
	ErrEmptyName = errors.New("rename: new name is empty")

	// ErrRenameFailed wraps filesystem errors from the rename itself.
	ErrRenameFailed = errors.New("rename: rename failed")
)
