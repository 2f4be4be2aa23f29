// Package engine provides the high-level facade over the FMOD Studio
// binding: bank loading, event playback, listener steering, and the
// per-frame update pump.
//
// Game code works in 2D. The engine lifts positions and velocities into the
// middleware's 3D space with a fixed basis (forward +Y, up +Z) and always
// addresses listener index 0.
//
// An Engine drives exactly one Studio system. Construct it with New (which
// creates the build-selected backend) or NewWithSystem (any binding
// implementation, used by tests), load banks, then call Update once per
// logical frame. Update is a no-op until a bank set has been loaded.
package engine
