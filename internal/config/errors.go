package config

import "errors"

// Validation errors returned by Load and Validate.
// Static conditions use package-level sentinel errors so callers can use
// errors.Is; per-field violations carry dynamic context and are wrapped
// with fmt.Errorf instead.
var (
	// ErrConfigNotFound is returned when no configuration file exists at
	// the explicit path or in any of the search locations.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrEmptyConfig is returned when the configuration file parses to an
	// empty list. A run without search definitions has nothing to do.
	ErrEmptyConfig = errors.New("configuration contains no search definitions")

	// ErrNotSequence is returned when the configuration document is not a
	// YAML sequence of mappings.
	ErrNotSequence = errors.New("configuration must be a list of search definitions")
)
