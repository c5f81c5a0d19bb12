// README: Error taxonomy shared by the flight and itinerary tools.
package types

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a required setting that is absent or malformed.
// It is raised before any network call is attempted.
type ConfigurationError struct {
	Key string
	// Reason is the problem with Key ("invalid", "unsupported"). Empty means missing.
	Reason string
	Hint   string
}

func (e *ConfigurationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing"
	}
	if e.Hint == "" {
		return fmt.Sprintf("%s %s", reason, e.Key)
	}
	return fmt.Sprintf("%s %s. %s", reason, e.Key, e.Hint)
}

// UpstreamError reports a non-success response or a malformed payload from an
// external provider (search or completion).
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	msg := e.Provider + ": upstream error"
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: upstream returned status %d", e.Provider, e.Status)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ResourceError reports a missing or unreadable static resource such as the
// itinerary template.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource %s unavailable: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// ValidationError is returned by request constructors when a field is out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsConfiguration reports whether err carries a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsUpstream reports whether err carries an UpstreamError.
func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// IsResource reports whether err carries a ResourceError.
func IsResource(err error) bool {
	var target *ResourceError
	return errors.As(err, &target)
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// TruncateBody keeps upstream bodies short enough for logs and error messages.
func TruncateBody(body []byte, max int) string {
	r := []rune(string(body))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max]) + "..."
}
