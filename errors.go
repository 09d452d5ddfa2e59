package estyped

import "fmt"

// Configuration errors
var (
	ErrEmptyServers         = fmt.Errorf("servers map is empty")
	ErrNoDefaultServer      = fmt.Errorf("default server name not specified")
	ErrDefaultServerMissing = fmt.Errorf("default server not found in servers map")
	ErrEmptyServerName      = fmt.Errorf("server name is empty")
)

// ErrEmptyServerAddresses returns error for a server with no addresses.
func ErrEmptyServerAddresses(serverName string) error {
	return fmt.Errorf("server %q has no addresses", serverName)
}

// ErrInvalidVersion returns error for an unsupported transport version.
func ErrInvalidVersion(serverName string, version int) error {
	return fmt.Errorf("server %q has invalid transport version %d (must be 8 or 9)", serverName, version)
}

// ErrServerNotFound returns error when a server is not found in the registry.
func ErrServerNotFound(serverName string) error {
	return fmt.Errorf("server %q not found in registry", serverName)
}

// ErrInvalidBaseURL returns error for an invalid server base URL.
func ErrInvalidBaseURL(serverName, address string) error {
	return fmt.Errorf("server %q has invalid base URL %q (must be absolute URL)", serverName, address)
}

// ErrShardCountOutOfRange returns the construction error for an invalid
// shard count.
func ErrShardCountOutOfRange(n int) error {
	return fmt.Errorf("shard count %d out of range [1,1000]", n)
}

// ErrReplicaCountOutOfRange returns the construction error for an invalid
// replica count.
func ErrReplicaCountOutOfRange(n int) error {
	return fmt.Errorf("replica count %d out of range [1,1000]", n)
}

// StatusError reports a non-2xx reply for callers who want status-as-error
// semantics. The dispatch layer itself never produces it; replies carry the
// status untouched.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s returned status code %d", e.Op, e.StatusCode)
}

// DecodeError reports a response envelope that could not be decoded: the
// top-level value was not an object, or a required field was absent or of
// the wrong shape. Envelope and Field identify where decoding stopped.
type DecodeError struct {
	Envelope string
	Field    string
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to decode %s: %v", e.Envelope, e.Cause)
	}
	if e.Cause == nil {
		return fmt.Sprintf("failed to decode %s: missing required field %q", e.Envelope, e.Field)
	}
	return fmt.Sprintf("failed to decode %s: field %q: %v", e.Envelope, e.Field, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
