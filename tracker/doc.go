// Package tracker caches service tracking handles per (context, type name)
// pair.
//
// A Cache hands out one shared, lazily opened handle per pair. On the first
// request for a pair the cache constructs a handle against the context's
// service source, arranges for the handle to be closed when the context's
// owning component stops, and opens it; every later request for the same
// pair reuses the same handle. Concurrent first requests for one pair join a
// single in-flight creation; requests for distinct pairs proceed
// independently.
//
// A Cache is an explicit process-owned value: create it at process start
// with New and tear it down with Close, which closes every cached handle.
//
// Creation failures are returned to the caller and never cached; the next
// request for the same pair retries creation from scratch.
package tracker
