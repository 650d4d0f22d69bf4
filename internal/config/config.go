package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// SearchDefinition describes one named, independently enabled query against
// the Slack search API.
type SearchDefinition struct {
	// Name labels the definition in output (the Type column).
	Name string

	// Enable controls whether the definition runs.
	Enable bool

	// Channels are the channels to search, order preserved. Must be non-empty.
	Channels []string

	// DaysBack limits the search to messages newer than now minus this many
	// days. Must be non-negative.
	DaysBack int

	// DoneMarker is the emoji tag excluded via -has:, marking a question as
	// already handled.
	DoneMarker string

	// Field is the gjson path expression selecting the message payload value
	// from a raw match.
	Field string

	// IgnoreUsers lists authors to exclude via -from:. May be empty.
	IgnoreUsers []string

	// Query is the search term.
	Query string

	// RegexSubstring optionally replaces the selected field with its first
	// capture group. Nil disables extraction.
	RegexSubstring *string

	// RegexFilter keeps only records whose selected field matches it.
	RegexFilter string
}

// Config is the ordered list of search definitions loaded from the file.
// It is read once at startup and immutable afterwards.
type Config struct {
	Searches []SearchDefinition
}

// Enabled returns the definitions with enable set, preserving file order.
func (c *Config) Enabled() []SearchDefinition {
	var out []SearchDefinition
	for _, def := range c.Searches {
		if def.Enable {
			out = append(out, def)
		}
	}
	return out
}

// requiredKeys are the keys every search definition must carry.
// Unknown keys are rejected, so requiredKeys is also the complete schema.
var requiredKeys = []string{
	"name",
	"enable",
	"channels",
	"days_back",
	"done_marker",
	"field",
	"ignore_users",
	"query",
	"regex_substring",
	"regex_filter",
}

// Load reads, parses, and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse parses and validates raw YAML configuration data.
// All violations found are collected and returned as a single joined error
// so the operator can fix everything in one pass.
func Parse(data []byte) (*Config, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrNotSequence, err)
		}
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyConfig
	}

	cfg := &Config{Searches: make([]SearchDefinition, 0, len(raw))}
	var violations []error
	for i, entry := range raw {
		def, errs := parseDefinition(i, entry)
		violations = append(violations, errs...)
		cfg.Searches = append(cfg.Searches, def)
	}

	if len(violations) > 0 {
		return nil, fmt.Errorf("invalid config file:\n%w", errors.Join(violations...))
	}
	return cfg, nil
}

// parseDefinition checks one raw definition against the schema and builds
// the typed value. It returns every violation found, not just the first.
func parseDefinition(index int, entry map[string]any) (SearchDefinition, []error) {
	// Prefer the name in diagnostics when one is present; fall back to the
	// position in the file.
	label := fmt.Sprintf("search definition %d", index)
	if name, ok := entry["name"].(string); ok && name != "" {
		label = fmt.Sprintf("search definition %q", name)
	}

	var violations []error
	fail := func(format string, args ...any) {
		violations = append(violations, fmt.Errorf(label+": "+format, args...))
	}

	for key := range entry {
		known := false
		for _, k := range requiredKeys {
			if key == k {
				known = true
				break
			}
		}
		if !known {
			fail("unknown key %q", key)
		}
	}
	for _, key := range requiredKeys {
		if _, ok := entry[key]; !ok {
			fail("missing required key %q", key)
		}
	}

	var def SearchDefinition
	def.Name = stringKey(entry, "name", fail)
	def.Enable = boolKey(entry, "enable", fail)
	def.Channels = stringSliceKey(entry, "channels", fail)
	def.DaysBack = intKey(entry, "days_back", fail)
	def.DoneMarker = stringKey(entry, "done_marker", fail)
	def.Field = stringKey(entry, "field", fail)
	def.IgnoreUsers = stringSliceKey(entry, "ignore_users", fail)
	def.Query = stringKey(entry, "query", fail)
	def.RegexSubstring = optionalStringKey(entry, "regex_substring", fail)
	def.RegexFilter = stringKey(entry, "regex_filter", fail)

	if v, ok := entry["channels"].([]any); ok && len(v) == 0 {
		fail("channels must not be empty")
	}
	if def.DaysBack < 0 {
		fail("days_back must not be negative")
	}
	if _, ok := entry["regex_filter"]; ok {
		if _, err := regexp.Compile(def.RegexFilter); err != nil {
			fail("regex_filter does not compile: %v", err)
		}
	}
	if def.RegexSubstring != nil {
		if _, err := regexp.Compile(*def.RegexSubstring); err != nil {
			fail("regex_substring does not compile: %v", err)
		}
	}

	return def, violations
}

func stringKey(entry map[string]any, key string, fail func(string, ...any)) string {
	v, ok := entry[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		fail("%s must be a string, got %T", key, v)
		return ""
	}
	return s
}

func boolKey(entry map[string]any, key string, fail func(string, ...any)) bool {
	v, ok := entry[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		fail("%s must be a boolean, got %T", key, v)
		return false
	}
	return b
}

func intKey(entry map[string]any, key string, fail func(string, ...any)) int {
	v, ok := entry[key]
	if !ok {
		return 0
	}
	n, ok := v.(int)
	if !ok {
		fail("%s must be an integer, got %T", key, v)
		return 0
	}
	return n
}

func stringSliceKey(entry map[string]any, key string, fail func(string, ...any)) []string {
	v, ok := entry[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		fail("%s must be a list of strings, got %T", key, v)
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			fail("%s[%d] must be a string, got %T", key, i, item)
			continue
		}
		out = append(out, s)
	}
	return out
}

func optionalStringKey(entry map[string]any, key string, fail func(string, ...any)) *string {
	v, ok := entry[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		fail("%s must be a string or null, got %T", key, v)
		return nil
	}
	return &s
}
