// Package config loads and validates the YAML file describing ketchup's
// search definitions.
//
// The file is an array of definitions, each naming one recurring query
// against the Slack search API. Validation is strict: every required key
// must be present, unknown keys are rejected, and all violations found are
// reported together rather than stopping at the first one.
package config
