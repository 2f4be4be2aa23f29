package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	studiobridge "github.com/audioforge/studio-bridge"
	"github.com/audioforge/studio-bridge/fmod"
)

// maxChannels is the Core channel budget requested at initialization.
const maxChannels = 1024

// masterBusPath routes every other bus, so muting it silences the session.
const masterBusPath = "bus:/"

// Engine owns one Studio system and the bookkeeping around it: the event
// paths discovered at bank load, the asset the banks came from, and the
// last listener pose committed to the middleware.
type Engine struct {
	sys fmod.System

	eventNames  []string
	assetID     uuid.UUID
	assetLoaded bool

	listenerPosition studiobridge.Vec2
	listenerVelocity studiobridge.Vec2
}

// New creates an Engine over the build-selected backend. liveUpdate opens
// the Studio profiler connection for authoring sessions.
func New(liveUpdate bool) (*Engine, error) {
	sys, err := fmod.NewSystem()
	if err != nil {
		return nil, err
	}
	return NewWithSystem(sys, liveUpdate)
}

// NewWithSystem creates an Engine over an already-created system. Tests use
// this to substitute a scripted backend.
func NewWithSystem(sys fmod.System, liveUpdate bool) (*Engine, error) {
	studioFlags := fmod.StudioInitNormal
	if liveUpdate {
		studioFlags |= fmod.StudioInitLiveUpdate
	}

	if err := sys.Initialize(maxChannels, studioFlags, fmod.InitRightHanded3D); err != nil {
		return nil, err
	}

	Logger().Info("studio system initialized",
		zap.Int("max_channels", maxChannels),
		zap.Bool("live_update", liveUpdate),
	)

	return &Engine{sys: sys}, nil
}

// LoadBanksFromMemory loads a set of bank buffers and records the event
// paths they contain, in bank order then within-bank order. Load the
// .strings bank first or paths come back in ID form; events whose path
// lookup fails are skipped, not fatal, so a content bank still loads
// without its strings bank.
//
// On failure the error is returned immediately: banks loaded before the
// failing buffer stay resident and their event paths stay recorded, and no
// asset id is recorded. There is no rollback.
func (e *Engine) LoadBanksFromMemory(assetID uuid.UUID, buffers [][]byte) error {
	for _, buffer := range buffers {
		bank, err := e.sys.LoadBankMemory(buffer, fmod.LoadBankNormal)
		if err != nil {
			return err
		}

		events, err := bank.EventList()
		if err != nil {
			return err
		}

		for _, event := range events {
			path, err := event.Path()
			if err != nil {
				Logger().Debug("skipping event with unresolvable path", zap.Error(err))
				continue
			}
			e.eventNames = append(e.eventNames, path)
		}
	}

	e.assetID = assetID
	e.assetLoaded = true

	Logger().Info("banks loaded",
		zap.String("asset_id", assetID.String()),
		zap.Int("banks", len(buffers)),
		zap.Int("events", len(e.eventNames)),
	)

	return nil
}

// UnloadAll unloads every bank from the system. There is no recovery path
// from a failed unload; the process state is unknown at that point, so this
// logs and panics.
func (e *Engine) UnloadAll() {
	if err := e.sys.UnloadAll(); err != nil {
		Logger().Error("failed to unload banks", zap.Error(err))
		panic(err)
	}
}

// EventNames returns every event path discovered at bank load, in load
// order.
func (e *Engine) EventNames() []string {
	return e.eventNames
}

// AssetID returns the id recorded by the last fully successful bank load,
// and whether one has been recorded at all.
func (e *Engine) AssetID() (uuid.UUID, bool) {
	return e.assetID, e.assetLoaded
}

// CreateEventInstance creates an instance of the named event without
// starting it. Callers must Start it themselves and almost certainly want
// MarkForRelease too; PlayEvent does both.
func (e *Engine) CreateEventInstance(eventName string) (*EventInstance, error) {
	assertEventPath(eventName)

	desc, err := e.sys.GetEvent(eventName)
	if err != nil {
		return nil, err
	}

	inst, err := desc.CreateInstance()
	if err != nil {
		return nil, err
	}

	return &EventInstance{inner: inst}, nil
}

// PlayEvent creates, starts, and marks for release an instance of the named
// event. The instance destroys itself once it reaches the stopped state.
func (e *Engine) PlayEvent(eventName string) (*EventInstance, error) {
	inst, err := e.CreateEventInstance(eventName)
	if err != nil {
		return nil, err
	}

	if err := inst.Start(); err != nil {
		return nil, err
	}
	if err := inst.MarkForRelease(); err != nil {
		return nil, err
	}

	return inst, nil
}

// PlayEventWithPosition is PlayEvent with a spatializer position and zero
// velocity.
func (e *Engine) PlayEventWithPosition(eventName string, position studiobridge.Vec2) (*EventInstance, error) {
	return e.PlayEventWithPositionVelocity(eventName, position, studiobridge.Vec2{})
}

// PlayEventWithPositionVelocity is PlayEvent with a full spatializer pose,
// applied before playback starts.
func (e *Engine) PlayEventWithPositionVelocity(eventName string, position, velocity studiobridge.Vec2) (*EventInstance, error) {
	inst, err := e.CreateEventInstance(eventName)
	if err != nil {
		return nil, err
	}

	if err := inst.SetPositionVelocity(position, velocity); err != nil {
		return nil, err
	}
	if err := inst.Start(); err != nil {
		return nil, err
	}
	if err := inst.MarkForRelease(); err != nil {
		return nil, err
	}

	return inst, nil
}

// SetGlobalMute mutes or unmutes the master bus.
func (e *Engine) SetGlobalMute(mute bool) error {
	bus, err := e.sys.GetBus(masterBusPath)
	if err != nil {
		return err
	}
	return bus.SetMute(mute)
}

// SetGlobalParameter sets a global (non-instanced) parameter, ignoring its
// seek speed. Instanced parameters are set per instance with
// EventInstance.SetParameterByName.
func (e *Engine) SetGlobalParameter(name string, value float32) error {
	return e.sys.SetParameterByName(name, value, true)
}

// IsEventPlaying reports whether any instance of the named event is live.
func (e *Engine) IsEventPlaying(eventName string) (bool, error) {
	count, err := e.EventInstanceCount(eventName)
	return count > 0, err
}

// EventInstanceCount returns how many instances of the named event are live.
func (e *Engine) EventInstanceCount(eventName string) (int32, error) {
	assertEventPath(eventName)

	desc, err := e.sys.GetEvent(eventName)
	if err != nil {
		return 0, err
	}
	return desc.InstanceCount()
}

// SetListenerPosition moves the listener, keeping the last set velocity.
func (e *Engine) SetListenerPosition(position studiobridge.Vec2) error {
	return e.SetListenerPositionVelocity(position, e.listenerVelocity)
}

// SetListenerVelocity sets the listener velocity for doppler, keeping the
// last set position.
func (e *Engine) SetListenerVelocity(velocity studiobridge.Vec2) error {
	return e.SetListenerPositionVelocity(e.listenerPosition, velocity)
}

// SetListenerPositionVelocity sets the full listener pose in one middleware
// call. The locally tracked pose is updated only when the call succeeds.
func (e *Engine) SetListenerPositionVelocity(position, velocity studiobridge.Vec2) error {
	if err := e.sys.SetListenerAttributes(0, liftPose(position, velocity)); err != nil {
		return err
	}

	e.listenerPosition = position
	e.listenerVelocity = velocity
	return nil
}

// ListenerPosition returns the last successfully committed listener
// position. Defaults to zero.
func (e *Engine) ListenerPosition() studiobridge.Vec2 {
	return e.listenerPosition
}

// ListenerVelocity returns the last successfully committed listener
// velocity. Defaults to zero.
func (e *Engine) ListenerVelocity() studiobridge.Vec2 {
	return e.listenerVelocity
}

// Update pumps the middleware: queued commands are submitted and callbacks
// fire here. Call once per logical frame. Does nothing until a bank set has
// been loaded.
func (e *Engine) Update() error {
	if !e.assetLoaded {
		return nil
	}
	return e.sys.Update()
}

// liftPose raises a 2D pose into the middleware's 3D space with the fixed
// basis forward +Y, up +Z.
func liftPose(position, velocity studiobridge.Vec2) fmod.Attributes3D {
	return fmod.Attributes3D{
		Position: fmod.Vector{X: position.X, Y: position.Y},
		Velocity: fmod.Vector{X: velocity.X, Y: velocity.Y},
		Forward:  fmod.Vector{Y: 1},
		Up:       fmod.Vector{Z: 1},
	}
}
