package errors

// ErrorClassification indicates whether an error should trigger a retry.
// Callers such as the tracker's Await loop use it to decide whether an
// operation may succeed if attempted again or represents a permanent failure.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: timeouts, a service not yet registered.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: validation errors, stopped contexts, missing capabilities.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// This determines the default retry behavior for each error type.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Retryable errors (temporary failures)
	CodeTimeout:     ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	CodeNotFound:      ClassificationPermanent,
	CodeAlreadyExists: ClassificationPermanent,
	CodeConflict:      ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeStopped:       ClassificationPermanent,
	CodeUnsupported:   ClassificationPermanent,

	// Infrastructure and system errors (permanent by default; wrap with a
	// retryable code where the caller knows better)
	CodeIO:       ClassificationPermanent,
	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent // Safe default
}
