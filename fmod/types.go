package fmod

import "strconv"

// Bit flags and enum discriminants below mirror FMOD's published numeric
// assignments. The interop boundary encodes the same constants independently
// in another runtime, so the two sides agree by convention only; nothing
// type-checks a drift. Keep this file as the single source of truth.

// InitFlags are FMOD_INIT_* core system flags.
type InitFlags uint32

const (
	InitNormal                InitFlags = 0x00000000
	InitStreamFromUpdate      InitFlags = 0x00000001
	InitMixFromUpdate         InitFlags = 0x00000002
	InitRightHanded3D         InitFlags = 0x00000004
	InitClipOutput            InitFlags = 0x00000008
	InitChannelLowpass        InitFlags = 0x00000100
	InitChannelDistanceFilter InitFlags = 0x00000200
	InitProfileEnable         InitFlags = 0x00010000
	InitVol0BecomesVirtual    InitFlags = 0x00020000
	InitGeometryUseClosest    InitFlags = 0x00040000
	InitPreferDolbyDownmix    InitFlags = 0x00080000
	InitThreadUnsafe          InitFlags = 0x00100000
	InitProfileMeterAll       InitFlags = 0x00200000
	InitMemoryTracking        InitFlags = 0x00400000
)

// StudioInitFlags are FMOD_STUDIO_INIT_* flags.
type StudioInitFlags uint32

const (
	StudioInitNormal              StudioInitFlags = 0x00000000
	StudioInitLiveUpdate          StudioInitFlags = 0x00000001
	StudioInitAllowMissingPlugins StudioInitFlags = 0x00000002
	StudioInitSynchronousUpdate   StudioInitFlags = 0x00000004
	StudioInitDeferredCallbacks   StudioInitFlags = 0x00000008
	StudioInitLoadFromUpdate      StudioInitFlags = 0x00000010
	StudioInitMemoryTracking      StudioInitFlags = 0x00000020
)

// LoadBankFlags are FMOD_STUDIO_LOAD_BANK_* flags.
type LoadBankFlags uint32

const (
	LoadBankNormal            LoadBankFlags = 0x00000000
	LoadBankNonBlocking       LoadBankFlags = 0x00000001
	LoadBankDecompressSamples LoadBankFlags = 0x00000002
	LoadBankUnencrypted       LoadBankFlags = 0x00000004
)

// PlaybackState is FMOD_STUDIO_PLAYBACK_STATE.
type PlaybackState int32

const (
	PlaybackPlaying    PlaybackState = 0
	PlaybackSustaining PlaybackState = 1
	PlaybackStopped    PlaybackState = 2
	PlaybackStarting   PlaybackState = 3
	PlaybackStopping   PlaybackState = 4
)

// Valid reports whether s is a known discriminant. Values received from the
// boundary must pass this before being handed to callers.
func (s PlaybackState) Valid() bool {
	return s >= PlaybackPlaying && s <= PlaybackStopping
}

func (s PlaybackState) String() string {
	switch s {
	case PlaybackPlaying:
		return "playing"
	case PlaybackSustaining:
		return "sustaining"
	case PlaybackStopped:
		return "stopped"
	case PlaybackStarting:
		return "starting"
	case PlaybackStopping:
		return "stopping"
	default:
		return "playback_state(" + strconv.FormatInt(int64(s), 10) + ")"
	}
}

// EventProperty is FMOD_STUDIO_EVENT_PROPERTY, the index of a built-in
// per-instance property.
type EventProperty int32

const (
	PropertyChannelPriority   EventProperty = 0
	PropertyScheduleDelay     EventProperty = 1
	PropertyScheduleLookahead EventProperty = 2
	PropertyMinimumDistance   EventProperty = 3
	PropertyMaximumDistance   EventProperty = 4
	PropertyCooldown          EventProperty = 5

	propertyMax EventProperty = 6
)

// Valid reports whether p names one of the six built-in properties.
func (p EventProperty) Valid() bool {
	return p >= PropertyChannelPriority && p < propertyMax
}

func (p EventProperty) String() string {
	switch p {
	case PropertyChannelPriority:
		return "channel_priority"
	case PropertyScheduleDelay:
		return "schedule_delay"
	case PropertyScheduleLookahead:
		return "schedule_lookahead"
	case PropertyMinimumDistance:
		return "minimum_distance"
	case PropertyMaximumDistance:
		return "maximum_distance"
	case PropertyCooldown:
		return "cooldown"
	default:
		return "event_property(" + strconv.FormatInt(int64(p), 10) + ")"
	}
}

// StopMode is FMOD_STUDIO_STOP_MODE.
type StopMode int32

const (
	StopAllowFadeout StopMode = 0
	StopImmediate    StopMode = 1
)

// Valid reports whether m is a known stop mode.
func (m StopMode) Valid() bool {
	return m == StopAllowFadeout || m == StopImmediate
}

func (m StopMode) String() string {
	switch m {
	case StopAllowFadeout:
		return "allow_fadeout"
	case StopImmediate:
		return "immediate"
	default:
		return "stop_mode(" + strconv.FormatInt(int64(m), 10) + ")"
	}
}

// Vector is FMOD_VECTOR.
type Vector struct {
	X, Y, Z float32
}

// Attributes3D is FMOD_3D_ATTRIBUTES: the full spatialization pose of a
// listener or an event instance. Forward and Up must be normalized and
// perpendicular; the facade layer pins them to a fixed orientation.
type Attributes3D struct {
	Position Vector
	Velocity Vector
	Forward  Vector
	Up       Vector
}
