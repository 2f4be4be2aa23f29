package fakefmod

import (
	"strings"

	"github.com/audioforge/studio-bridge/fmod"
	"github.com/audioforge/studio-bridge/status"
)

type parameter struct {
	value float32
	final float32
}

// Instance is one scripted event instance. Exported so tests can reach the
// scripting hooks (ModulatePitch, SetVirtual) through engine's Inner()
// escape hatch.
type Instance struct {
	desc *eventDescription

	state     fmod.PlaybackState
	paused    bool
	released  bool
	reclaimed bool
	virtual   bool

	pitch       float32
	finalPitch  float32
	volume      float32
	finalVolume float32
	// modulation scales the final pitch, standing in for authored
	// modulators. Applied on the next Update like the real recalculation.
	modulation float32

	attrs    fmod.Attributes3D
	timeline int32
	props    map[fmod.EventProperty]float32
	params   map[string]*parameter
}

var _ fmod.EventInstance = (*Instance)(nil)

// ModulatePitch sets the modulation factor combined into the final pitch on
// the next Update.
func (i *Instance) ModulatePitch(factor float32) {
	i.modulation = factor
}

// SetVirtual marks the instance as virtualized by the polyphony limit.
func (i *Instance) SetVirtual(virtual bool) {
	i.virtual = virtual
}

// State returns the current playback state without a boundary call.
func (i *Instance) State() fmod.PlaybackState {
	return i.state
}

// step advances the instance one frame.
func (i *Instance) step() {
	switch i.state {
	case fmod.PlaybackStarting:
		i.state = fmod.PlaybackPlaying
	case fmod.PlaybackStopping:
		i.state = fmod.PlaybackStopped
	}

	i.finalPitch = i.pitch * i.modulation
	i.finalVolume = i.volume
	for _, p := range i.params {
		p.final = p.value
	}

	if i.released && i.state == fmod.PlaybackStopped {
		i.reclaimed = true
	}
}

// enter records the call and rejects operations on a reclaimed handle.
func (i *Instance) enter(op string) error {
	if err := i.desc.sys.enter(op); err != nil {
		return err
	}
	if i.reclaimed {
		return status.Check(op, int32(status.ErrInvalidHandle))
	}
	return nil
}

func (i *Instance) Start() error {
	if err := i.enter("Studio_EventInstance_Start"); err != nil {
		return err
	}
	i.state = fmod.PlaybackStarting
	return nil
}

func (i *Instance) Release() error {
	if err := i.enter("Studio_EventInstance_Release"); err != nil {
		return err
	}
	i.released = true
	return nil
}

func (i *Instance) Stop(mode fmod.StopMode) error {
	if err := i.enter("Studio_EventInstance_Stop"); err != nil {
		return err
	}
	if !mode.Valid() {
		return status.Check("Studio_EventInstance_Stop", int32(status.ErrInvalidParam))
	}
	if mode == fmod.StopImmediate {
		i.state = fmod.PlaybackStopped
	} else {
		i.state = fmod.PlaybackStopping
	}
	return nil
}

func (i *Instance) SetPaused(paused bool) error {
	if err := i.enter("Studio_EventInstance_SetPaused"); err != nil {
		return err
	}
	i.paused = paused
	return nil
}

func (i *Instance) Paused() (bool, error) {
	if err := i.enter("Studio_EventInstance_GetPaused"); err != nil {
		return false, err
	}
	return i.paused, nil
}

func (i *Instance) SetPitch(pitch float32) error {
	if err := i.enter("Studio_EventInstance_SetPitch"); err != nil {
		return err
	}
	if pitch < 0 {
		return status.Check("Studio_EventInstance_SetPitch", int32(status.ErrInvalidParam))
	}
	i.pitch = pitch
	return nil
}

func (i *Instance) Pitch() (float32, float32, error) {
	if err := i.enter("Studio_EventInstance_GetPitch"); err != nil {
		return 0, 0, err
	}
	return i.pitch, i.finalPitch, nil
}

func (i *Instance) SetVolume(volume float32) error {
	if err := i.enter("Studio_EventInstance_SetVolume"); err != nil {
		return err
	}
	i.volume = volume
	return nil
}

func (i *Instance) Volume() (float32, float32, error) {
	if err := i.enter("Studio_EventInstance_GetVolume"); err != nil {
		return 0, 0, err
	}
	return i.volume, i.finalVolume, nil
}

func (i *Instance) Set3DAttributes(attributes fmod.Attributes3D) error {
	if err := i.enter("Studio_EventInstance_Set3DAttributes"); err != nil {
		return err
	}
	i.attrs = attributes
	return nil
}

func (i *Instance) Get3DAttributes() (fmod.Attributes3D, error) {
	if err := i.enter("Studio_EventInstance_Get3DAttributes"); err != nil {
		return fmod.Attributes3D{}, err
	}
	return i.attrs, nil
}

func (i *Instance) SetProperty(index fmod.EventProperty, value float32) error {
	if err := i.enter("Studio_EventInstance_SetProperty"); err != nil {
		return err
	}
	if !index.Valid() {
		return status.Check("Studio_EventInstance_SetProperty", int32(status.ErrInvalidParam))
	}
	i.props[index] = value
	return nil
}

func (i *Instance) Property(index fmod.EventProperty) (float32, error) {
	if err := i.enter("Studio_EventInstance_GetProperty"); err != nil {
		return 0, err
	}
	if !index.Valid() {
		return 0, status.Check("Studio_EventInstance_GetProperty", int32(status.ErrInvalidParam))
	}
	return i.props[index], nil
}

func (i *Instance) SetTimelinePosition(position int32) error {
	if err := i.enter("Studio_EventInstance_SetTimelinePosition"); err != nil {
		return err
	}
	i.timeline = position
	return nil
}

func (i *Instance) TimelinePosition() (int32, error) {
	if err := i.enter("Studio_EventInstance_GetTimelinePosition"); err != nil {
		return 0, err
	}
	return i.timeline, nil
}

func (i *Instance) SetParameterByName(name string, value float32, _ bool) error {
	if err := i.enter("Studio_EventInstance_SetParameterByName"); err != nil {
		return err
	}
	key := strings.ToLower(name)
	p, ok := i.params[key]
	if !ok {
		p = &parameter{}
		i.params[key] = p
	}
	p.value = value
	// While stopped the middleware applies the value immediately,
	// regardless of seek speed.
	if i.state == fmod.PlaybackStopped {
		p.final = value
	}
	return nil
}

func (i *Instance) ParameterByName(name string) (float32, float32, error) {
	if err := i.enter("Studio_EventInstance_GetParameterByName"); err != nil {
		return 0, 0, err
	}
	p, ok := i.params[strings.ToLower(name)]
	if !ok {
		return 0, 0, status.Check("Studio_EventInstance_GetParameterByName", int32(status.ErrEventNotFound))
	}
	return p.value, p.final, nil
}

func (i *Instance) PlaybackState() (fmod.PlaybackState, error) {
	if err := i.enter("Studio_EventInstance_GetPlaybackState"); err != nil {
		return fmod.PlaybackStopped, err
	}
	return i.state, nil
}

func (i *Instance) IsVirtual() (bool, error) {
	if err := i.enter("Studio_EventInstance_IsVirtual"); err != nil {
		return false, err
	}
	return i.virtual, nil
}
