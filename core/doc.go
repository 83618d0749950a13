// Package core provides the foundational contracts for a component platform:
// components, execution contexts, lifecycle events, and service tracking.
//
// This package defines the interfaces that a platform implementation must
// provide and that the helper packages in this module build upon. It contains
// no platform logic of its own.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Zero dependencies: Only uses the Go standard library
//   - Interface composition: Small focused interfaces compose into larger contracts
//   - Optional capabilities: Use type assertions for implementation-specific features
//
// # Contracts
//
//   - Component: a named unit managed by the platform
//   - Context: a component's execution context (identity, events, services)
//   - EventSource: lifecycle event subscription with sync or async delivery
//   - ServiceSource / Handle: service lookup and tracking by type name
//
// Optional capabilities discovered via type assertion:
//
//   - EntryProvider: access to static entries shipped with a component
//
// # Checking Optional Capabilities
//
//	if ep, ok := component.(core.EntryProvider); ok {
//	    rc, err := ep.Entry(".options")
//	}
//
// # Implementations
//
// This package contains only contract definitions. An in-process reference
// implementation suitable for embedding and testing is provided by
// github.com/ifml-editor-alpha/platformkit/host.
package core
