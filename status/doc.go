// Package status provides status records and the process log sink used by the
// platformkit packages.
//
// A Status captures the outcome of an operation: a severity, a human-readable
// message, an optional cause, and the name of the component the outcome
// belongs to. Status implements error, so a non-OK status can be returned
// directly from functions that report failure.
//
// The package also owns the module's log sink. Helper packages never write to
// standard streams directly; they build a Status and hand it to Log, which
// routes it through a zerolog logger. Embedding applications install their
// own logger at process start with SetLogger.
package status
