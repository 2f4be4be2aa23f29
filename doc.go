// Package studiobridge provides a backend-agnostic control surface over the
// FMOD Studio audio middleware.
//
// The library exposes one API for loading banks, firing events, and steering
// 3D-positioned instances, backed by whichever runtime the build targets:
// native builds call into libfmodstudio through FFI, and js/wasm builds
// marshal every operation across the browser boundary to a JS-side shim.
// Backend selection happens at compile time via build tags; application code
// never branches on it.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	studiobridge/        Root package with shared 2D math types
//	├── status/          FMOD result-code taxonomy and structured errors
//	├── fmod/            Binding layer: constant tables, contract interfaces,
//	│                    native (purego) and interop (syscall/js) variants
//	├── engine/          High-level Engine and EventInstance facades
//	└── cmd/demo/        Demo driver with scripted and interactive modes
//
// # Quick Start
//
// Load a pair of banks and fire an event:
//
//	eng, err := engine.New(false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := eng.LoadBanksFromMemory(uuid.New(), [][]byte{strings, master}); err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := eng.PlayEvent("event:/Weapons/Pistol"); err != nil {
//	    log.Fatal(err)
//	}
//
//	for range ticker.C {
//	    eng.Update()
//	}
//
// # Handles
//
// Middleware objects (systems, banks, event descriptions, instances, buses)
// are opaque handles owned by the backend. The library never dereferences
// them; a stale handle surfaces as a status.Error carrying ErrInvalidHandle
// rather than undefined behavior.
//
// # Thread Safety
//
// Engine and EventInstance are not safe for concurrent use. Drive them from
// a single goroutine, typically the one that pumps Update.
package studiobridge
