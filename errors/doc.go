// Package errors provides structured error handling for the platformkit
// packages.
//
// It extends Go's standard error handling with error codes, retry
// classification, and contextual metadata, while remaining fully compatible
// with errors.Is, errors.As, and errors.Unwrap.
//
// # Creating Errors
//
//	err := errors.New(errors.CodeNotFound, "service not registered")
//	err := errors.Newf(errors.CodeInvalidInput, "bad kind mask: %v", mask)
//
// # Wrapping Errors
//
//	if err := h.Open(); err != nil {
//	    return errors.Wrap(err, errors.CodeUnavailable, "failed to open handle")
//	}
//
// # Classification
//
// Every code carries a default classification (retryable or permanent) that
// callers can consult to drive retry loops:
//
//	if errors.IsRetryable(err) {
//	    // back off and try again
//	}
//
// # Context Metadata
//
//	err = errors.WithContext(err, "component", c.Name())
//
// Context is attached immutably: each call returns a new error value and
// never mutates the one passed in.
package errors
