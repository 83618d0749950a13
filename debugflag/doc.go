// Package debugflag loads per-component debug tracing options and exposes
// them as named flags.
//
// A component opts in by shipping a ".options" entry in java-properties
// format, keyed as "<component>/debug/<option>":
//
//	com.example.editor/debug/cache = true
//	com.example.editor/debug/events = false
//
// A missing entry means every flag is disabled. Flags carry a formatting
// style so trace lines can optionally include the caller location:
//
//	flags, _ := debugflag.Load(component)
//	traceCache := flags.Flag("cache", debugflag.StylePlain)
//	traceCache.Logf("hit for %s", key)
package debugflag
