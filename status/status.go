package status

import "fmt"

// Severity classifies a Status.
type Severity int

const (
	// SeverityOK indicates the operation completed normally.
	SeverityOK Severity = iota
	// SeverityInfo indicates a noteworthy but non-problematic outcome.
	SeverityInfo
	// SeverityWarning indicates a recoverable problem.
	SeverityWarning
	// SeverityError indicates a failure.
	SeverityError
	// SeverityCancel indicates the operation was canceled.
	SeverityCancel
)

// String returns a string representation of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Status describes the outcome of an operation.
//
// The zero value is an OK status with no message.
type Status struct {
	// Severity classifies the outcome.
	Severity Severity

	// Message is the human-readable description. When empty and Err is
	// set, the cause's text stands in for it.
	Message string

	// Err is the underlying cause, if any.
	Err error

	// Component names the component the status belongs to. Empty means
	// the owner is unknown.
	Component string
}

// Canonical statuses.
var (
	// OK is the canonical success status.
	OK = Status{Severity: SeverityOK}

	// Cancel is the canonical cancellation status.
	Cancel = Status{Severity: SeverityCancel, Message: "canceled"}

	// Err is the canonical error status with no message.
	Err = Status{Severity: SeverityError}
)

// NewError returns an error status wrapping err. The message falls back to
// the cause's text when empty.
func NewError(err error, message, component string) Status {
	return build(SeverityError, err, message, component)
}

// NewWarning returns a warning status wrapping err. The message falls back to
// the cause's text when empty.
func NewWarning(err error, message, component string) Status {
	return build(SeverityWarning, err, message, component)
}

// NewInfo returns an informational status.
func NewInfo(message, component string) Status {
	return build(SeverityInfo, nil, message, component)
}

// OkCancel converts a boolean into the canonical OK or Cancel status.
func OkCancel(b bool) Status {
	if b {
		return OK
	}
	return Cancel
}

// OkError converts a boolean into the canonical OK or Err status.
func OkError(b bool) Status {
	if b {
		return OK
	}
	return Err
}

func build(sev Severity, err error, message, component string) Status {
	if message == "" && err != nil {
		message = err.Error()
	}
	return Status{Severity: sev, Message: message, Err: err, Component: component}
}

// IsOK reports whether the status carries no problem.
func (s Status) IsOK() bool {
	return s.Severity == SeverityOK || s.Severity == SeverityInfo
}

// Error implements the error interface.
// Format: "severity: message" or "severity: message: cause" when a distinct
// cause is present.
func (s Status) Error() string {
	msg := s.Message
	if msg == "" && s.Err != nil {
		msg = s.Err.Error()
	}
	if s.Err != nil && s.Err.Error() != msg {
		return fmt.Sprintf("%s: %s: %v", s.Severity, msg, s.Err)
	}
	return fmt.Sprintf("%s: %s", s.Severity, msg)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (s Status) Unwrap() error {
	return s.Err
}
