package engine

import (
	studiobridge "github.com/audioforge/studio-bridge"
	"github.com/audioforge/studio-bridge/fmod"
)

// EventInstance is one particular firing of an event, configurable with
// pitch, volume, parameters, and a spatializer pose.
//
// Once an instance has been marked for release and reaches the stopped
// state the middleware reclaims it; any later operation returns a
// status.Error carrying ErrInvalidHandle.
type EventInstance struct {
	inner fmod.EventInstance
}

// Inner exposes the binding-level instance. Not every middleware operation
// is surfaced on this facade; this is the escape hatch for the rest.
func (i *EventInstance) Inner() fmod.EventInstance {
	return i.inner
}

// Start begins playback. Starting an instance that is already playing
// restarts it.
func (i *EventInstance) Start() error {
	return i.inner.Start()
}

// MarkForRelease schedules the instance for destruction once it reaches the
// stopped state.
func (i *EventInstance) MarkForRelease() error {
	return i.inner.Release()
}

// Stop stops playback with a fadeout, letting release envelopes and effect
// tails play out. Prefer this over StopImmediately.
func (i *EventInstance) Stop() error {
	return i.inner.Stop(fmod.StopAllowFadeout)
}

// StopImmediately stops playback without a fadeout.
func (i *EventInstance) StopImmediately() error {
	return i.inner.Stop(fmod.StopImmediate)
}

// Pause pauses the instance. Pausing an already-paused instance does
// nothing.
func (i *EventInstance) Pause() error {
	return i.inner.SetPaused(true)
}

// Unpause resumes the instance. Unpausing a playing instance does nothing.
func (i *EventInstance) Unpause() error {
	return i.inner.SetPaused(false)
}

// IsPaused returns the pause state. This is independent of PlaybackState:
// a paused instance still reports Playing there.
func (i *EventInstance) IsPaused() (bool, error) {
	return i.inner.Paused()
}

// PlaybackState returns the instance's lifecycle state. Paused instances
// report Playing; pause is queried separately with IsPaused.
func (i *EventInstance) PlaybackState() (fmod.PlaybackState, error) {
	return i.inner.PlaybackState()
}

// SetPitch sets the pitch multiplier. The multiplier must be at least zero;
// the final combined pitch is clamped to [0, 100] by the middleware. The
// default is 1.
func (i *EventInstance) SetPitch(pitch float32) error {
	assertPitch(pitch)
	return i.inner.SetPitch(pitch)
}

// Pitch returns the pitch multiplier set on this instance alone. See
// FinalPitch for the combined value.
func (i *EventInstance) Pitch() (float32, error) {
	value, _, err := i.inner.Pitch()
	return value, err
}

// FinalPitch returns the pitch after automation and modulation. The
// middleware recalculates it asynchronously once per Update.
func (i *EventInstance) FinalPitch() (float32, error) {
	_, final, err := i.inner.Pitch()
	return final, err
}

// SetVolume sets the volume scaling factor. It scales, not overrides, the
// authored volume and any automation.
func (i *EventInstance) SetVolume(volume float32) error {
	return i.inner.SetVolume(volume)
}

// Volume returns the volume factor set on this instance alone. See
// FinalVolume for the combined value.
func (i *EventInstance) Volume() (float32, error) {
	value, _, err := i.inner.Volume()
	return value, err
}

// FinalVolume returns the volume after automation and modulation. The
// middleware recalculates it asynchronously once per Update.
func (i *EventInstance) FinalVolume() (float32, error) {
	_, final, err := i.inner.Volume()
	return final, err
}

// SetProperty sets a built-in instance property.
func (i *EventInstance) SetProperty(property fmod.EventProperty, value float32) error {
	return i.inner.SetProperty(property, value)
}

// Property returns a built-in instance property.
func (i *EventInstance) Property(property fmod.EventProperty) (float32, error) {
	return i.inner.Property(property)
}

// SetTimelinePosition moves the timeline cursor, in milliseconds. The
// middleware's cursor is a signed 32-bit value.
func (i *EventInstance) SetTimelinePosition(position uint32) error {
	assertTimeline(position)
	return i.inner.SetTimelinePosition(int32(position))
}

// TimelinePosition returns the timeline cursor position in milliseconds.
func (i *EventInstance) TimelinePosition() (uint32, error) {
	position, err := i.inner.TimelinePosition()
	return uint32(position), err
}

// SetParameterByName sets an instanced parameter by case-insensitive name.
// ignoreSeekSpeed applies the value immediately instead of ramping at the
// parameter's seek speed; while the instance is stopped the value is
// applied immediately regardless. Automatic parameters and unknown names
// return an error.
func (i *EventInstance) SetParameterByName(name string, value float32, ignoreSeekSpeed bool) error {
	return i.inner.SetParameterByName(name, value, ignoreSeekSpeed)
}

// ParameterByName returns an instanced parameter's set value by
// case-insensitive name. Automatic parameters always return zero.
func (i *EventInstance) ParameterByName(name string) (float32, error) {
	value, _, err := i.inner.ParameterByName(name)
	return value, err
}

// FinalParameterByName returns a parameter's value after automation,
// modulation, seek speed, and velocity adjustments, recalculated once per
// Update.
func (i *EventInstance) FinalParameterByName(name string) (float32, error) {
	_, final, err := i.inner.ParameterByName(name)
	return final, err
}

// SetPositionVelocity sets the instance's spatializer pose.
func (i *EventInstance) SetPositionVelocity(position, velocity studiobridge.Vec2) error {
	return i.inner.Set3DAttributes(liftPose(position, velocity))
}

// PositionVelocity returns the instance's spatializer pose, projected back
// to 2D.
func (i *EventInstance) PositionVelocity() (studiobridge.PositionVelocity, error) {
	attrs, err := i.inner.Get3DAttributes()
	if err != nil {
		return studiobridge.PositionVelocity{}, err
	}
	return studiobridge.PositionVelocity{
		Position: studiobridge.Vec2{X: attrs.Position.X, Y: attrs.Position.Y},
		Velocity: studiobridge.Vec2{X: attrs.Velocity.X, Y: attrs.Velocity.Y},
	}, nil
}

// IsVirtual reports whether the instance was silenced by the polyphony
// limit without being stopped.
func (i *EventInstance) IsVirtual() (bool, error) {
	return i.inner.IsVirtual()
}
