package fmod

// The binding contract: the curated subset of the FMOD Studio API that both
// backend variants implement. Exactly one variant compiles into a given
// build — the purego FFI binding everywhere except GOOS=js, and the
// syscall/js interop binding under js/wasm — so call sites never branch on
// backend.
//
// Handles behind these interfaces are opaque. Implementations never
// dereference them; validity is entirely the middleware's responsibility,
// and operations on a stale handle come back as ERR_INVALID_HANDLE, not
// undefined behavior.

// System is the Studio system handle, one per session.
type System interface {
	// Initialize starts the system with the given channel budget and flags.
	Initialize(maxChannels int32, studioFlags StudioInitFlags, flags InitFlags) error

	// LoadBankMemory loads a bank from an in-memory buffer. The middleware
	// copies the buffer, so the caller may reuse it after return.
	LoadBankMemory(buffer []byte, flags LoadBankFlags) (Bank, error)

	// UnloadAll unloads every bank loaded into the system.
	UnloadAll() error

	// GetEvent looks up an event description by path ("event:/...") or ID.
	GetEvent(pathOrID string) (EventDescription, error)

	// GetBus looks up a bus by path ("bus:/...") or ID.
	GetBus(pathOrID string) (Bus, error)

	// SetParameterByName sets a global (non-instanced) parameter.
	SetParameterByName(name string, value float32, ignoreSeekSpeed bool) error

	// SetListenerAttributes sets the 3D pose of the listener at index.
	SetListenerAttributes(index int32, attributes Attributes3D) error

	// Update flushes queued commands and runs deferred middleware work.
	// Call once per logical frame.
	Update() error
}

// Bank is a loaded bank handle. Banks are only enumerated for their event
// descriptions; the middleware keeps content resident until UnloadAll.
type Bank interface {
	// EventCount returns the number of event descriptions in the bank.
	EventCount() (int32, error)

	// EventList returns the bank's event descriptions.
	EventList() ([]EventDescription, error)
}

// EventDescription is an event template handle obtained by path lookup.
type EventDescription interface {
	// Path returns the event's full path, or its ID form when no strings
	// bank is loaded.
	Path() (string, error)

	// CreateInstance synthesizes a playable instance of the event.
	CreateInstance() (EventInstance, error)

	// InstanceCount returns the number of live instances of this event.
	InstanceCount() (int32, error)
}

// EventInstance is one live occurrence of an event. Instances are destroyed
// by the middleware once released and stopped, never freed from this side.
type EventInstance interface {
	Start() error
	// Release marks the instance for destruction once it reaches the
	// stopped state.
	Release() error
	Stop(mode StopMode) error

	SetPaused(paused bool) error
	Paused() (bool, error)

	// Pitch returns the set multiplier and the final value combining
	// automation and modulation, recalculated once per Update.
	SetPitch(pitch float32) error
	Pitch() (value, finalValue float32, err error)

	SetVolume(volume float32) error
	Volume() (value, finalValue float32, err error)

	Set3DAttributes(attributes Attributes3D) error
	Get3DAttributes() (Attributes3D, error)

	SetProperty(index EventProperty, value float32) error
	Property(index EventProperty) (float32, error)

	SetTimelinePosition(position int32) error
	TimelinePosition() (int32, error)

	// SetParameterByName matches the parameter case-insensitively. The
	// middleware applies the value immediately regardless of seek speed
	// while the instance is stopped.
	SetParameterByName(name string, value float32, ignoreSeekSpeed bool) error
	ParameterByName(name string) (value, finalValue float32, err error)

	PlaybackState() (PlaybackState, error)

	// IsVirtual reports whether the instance was silenced by the polyphony
	// limit without being stopped.
	IsVirtual() (bool, error)
}

// Bus is a mixer bus handle.
type Bus interface {
	SetMute(mute bool) error
}
