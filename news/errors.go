package news

import "fmt"

// ConfigError reports missing credential or channel configuration. The
// affected feature is disabled in place; startup continues.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration missing: %s", e.Missing)
}

// NetworkError reports a transport failure or a non-2xx response from a
// backend call. It is rendered inline, never raised to a crash.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError reports bad local input, caught before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an update or delete aimed at an entry that has no
// remote match.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no remote entry titled %q", e.Title)
}

// UnsupportedError marks operations a backend does not implement, such as
// deletion on the raw-file host.
type UnsupportedError struct {
	Backend string
	Op      string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s backend does not support %s", e.Backend, e.Op)
}
