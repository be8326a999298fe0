// Package log provides a very small opinionated wrapper around Go's standard
// library logging facilities. Its goal is to offer a consistent way to emit
// logs per Quimera service (editor, palette, storage, api, preview, ...)
// while keeping migration friction low.
//
// Key Features
//
//   - Per service loggers via ForService(name)
//   - Automatic prefix in every line: `[name>]` (example: `[editor>] section committed`)
//   - Convenience level helpers: Infof, Warnf, Errorf, Debugf
//   - Debug logging can be enabled globally (SetGlobalDebug) or per service
//     (EnableDebugFor / DisableDebugFor)
//   - Uses the standard library *log.Logger* under the hood (no external deps)
//   - Central output writer (SetOutput) that updates existing loggers
//
// Non‑Goals (for now)
//
//   - Full-featured leveled logging framework
//   - Structured / JSON logging
//   - Log sampling, rotation, or asynchronous buffering
//
// Basic Usage
//
//	import (
//		"github.com/quimera-ai/quimera/pkg/log"
//	)
//
//	func main() {
//		// Enable global debug logs if desired.
//		log.SetGlobalDebug(true)
//
//		// Acquire a logger for a service.
//		ed := log.ForService("editor")
//
//		ed.Infof("section %s committed", id)
//		ed.Warnf("preview hub has no listeners")
//		ed.Debugf("payload: %v", data) // printed because global debug enabled
//	}
//
// Selective Debug
//
//	// Only enable debug for the 'palette' service.
//	log.EnableDebugFor("palette")
//	log.ForService("palette").Debugf("visible")
//	log.ForService("storage").Debugf("NOT visible")
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. Internally the package
// relies on sync.Map and atomic primitives for minimal locking.
//
// # Testing
//
// Tests can redirect output by calling SetOutput with a bytes.Buffer,
// enabling assertions on log contents.
package log
