// Package errors provides the error handling system shared by the platformkit
// packages. It extends Go's standard error handling with structured error
// codes, retry classification, and context preservation.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeConflict indicates a resource state conflict that prevents the operation.
	CodeConflict ErrorCode = "CONFLICT"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Platform errors.

	// CodeStopped indicates the operation was attempted against a component
	// or context that has stopped.
	CodeStopped ErrorCode = "STOPPED"

	// CodeUnsupported indicates the target does not provide the requested
	// capability.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// Infrastructure errors.

	// CodeIO indicates a filesystem or stream operation failed.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeUnavailable indicates a required service is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
