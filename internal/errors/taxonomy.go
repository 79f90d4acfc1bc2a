package errors

import (
	"fmt"
	"strings"
)

// Typed failures raised by the configuration resolution pipeline. Each is a
// distinct type so callers can branch with errors.As; messages are stable
// because downstream tooling matches on them.

// SchemaValidationError reports raw CLI input that failed type or enum
// validation. Fields lists the offending flat field names.
type SchemaValidationError struct {
	Fields []string
	Detail string
}

func (e *SchemaValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid input for %s: %s", strings.Join(e.Fields, ", "), e.Detail)
	}
	return fmt.Sprintf("invalid input for %s", strings.Join(e.Fields, ", "))
}

// MissingCredentialError reports an absent or empty required credential.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("credential required; set %s", e.EnvVar)
}

// InvalidCommandError reports a positional command token outside the
// allow-list. Matching is case-sensitive with no normalization.
type InvalidCommandError struct {
	Name    string
	Allowed []string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("Invalid command: %s, allowed commands: %s", e.Name, strings.Join(e.Allowed, ", "))
}

// InvalidJSONError reports a JSON-in-string flag value that failed to parse.
// The raw string is echoed so the user can see exactly what was rejected.
type InvalidJSONError struct {
	Flag string
	Raw  string
	Err  error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("Invalid JSON for %s: %s", e.Flag, e.Raw)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// ConfigDirectoryError reports a config directory that exists but is not a
// writable directory. Non-existence is not an error (downstream defaulting
// proceeds without it).
type ConfigDirectoryError struct {
	Path   string
	Reason string
}

func (e *ConfigDirectoryError) Error() string {
	return fmt.Sprintf("invalid config directory %s: %s", e.Path, e.Reason)
}

// ConfigDiscoveryError carries a failure from the config file discovery
// walk. The underlying error is preserved unwrapped via Unwrap.
type ConfigDiscoveryError struct {
	Path string
	Err  error
}

func (e *ConfigDiscoveryError) Error() string {
	return fmt.Sprintf("config discovery failed at %s: %v", e.Path, e.Err)
}

func (e *ConfigDiscoveryError) Unwrap() error { return e.Err }
