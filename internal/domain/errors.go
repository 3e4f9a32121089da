package domain

import "errors"

// Scaffolding failure classes. Commands match on these with errors.Is; all of
// them end the run with a non-zero exit.
var (
	// ErrUnknownExample is returned when an example id is not in the registry.
	ErrUnknownExample = errors.New("unknown example")

	// ErrUnknownCategory is returned when a category id is not in the registry.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrOutputExists is returned when the output directory already exists.
	// The existing directory is never touched.
	ErrOutputExists = errors.New("output directory already exists")

	// ErrMissingSource is returned when a registry entry points at a file that
	// does not exist under the repository root.
	ErrMissingSource = errors.New("missing source file")
)
