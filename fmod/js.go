//go:build js && wasm

package fmod

import (
	"syscall/js"

	"github.com/audioforge/studio-bridge/status"
)

// The interop binding. Each bound operation is a named function on the JS
// global object taking a flattened argument list and returning one Result
// Envelope; see the package doc for the full table. Handles are
// boundary-crossing references (js.Value), never dereferenced on this side.

// boundaryFunctions is the complete table the shim must export. Checked
// once at system creation so a half-wired shim fails loudly instead of
// panicking mid-frame.
var boundaryFunctions = []string{
	"Studio_System_Create",
	"Studio_System_Initialize",
	"Studio_System_LoadBankMemory",
	"Studio_System_UnloadAll",
	"Studio_System_GetEvent",
	"Studio_System_GetBus",
	"Studio_System_SetParameterByName",
	"Studio_System_SetListenerAttributes",
	"Studio_System_Update",
	"Studio_Bank_GetEventCount",
	"Studio_Bank_GetEventList",
	"Studio_EventDescription_GetPath",
	"Studio_EventDescription_CreateInstance",
	"Studio_EventDescription_GetInstanceCount",
	"Studio_EventInstance_Start",
	"Studio_EventInstance_Release",
	"Studio_EventInstance_Stop",
	"Studio_EventInstance_SetPaused",
	"Studio_EventInstance_GetPaused",
	"Studio_EventInstance_SetPitch",
	"Studio_EventInstance_GetPitch",
	"Studio_EventInstance_SetVolume",
	"Studio_EventInstance_GetVolume",
	"Studio_EventInstance_Set3DAttributes",
	"Studio_EventInstance_Get3DAttributes",
	"Studio_EventInstance_SetProperty",
	"Studio_EventInstance_GetProperty",
	"Studio_EventInstance_SetTimelinePosition",
	"Studio_EventInstance_GetTimelinePosition",
	"Studio_EventInstance_SetParameterByName",
	"Studio_EventInstance_GetParameterByName",
	"Studio_EventInstance_GetPlaybackState",
	"Studio_EventInstance_IsVirtual",
	"Studio_Bus_SetMute",
}

func checkBoundary() error {
	var missing []string
	global := js.Global()
	for _, name := range boundaryFunctions {
		if global.Get(name).Type() != js.TypeFunction {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFunctionsError{Names: missing}
	}
	return nil
}

func call(name string, args ...any) js.Value {
	return js.Global().Call(name, args...)
}

// NewSystem creates the Studio system through the interop binding.
func NewSystem() (System, error) {
	if err := checkBoundary(); err != nil {
		return nil, err
	}

	ref, err := envRef("Studio_System_Create", call("Studio_System_Create"))
	if err != nil {
		return nil, err
	}
	Logger().Debug("studio system created over interop boundary")
	return &system{ref: ref}, nil
}

type system struct {
	ref js.Value
}

func (s *system) Initialize(maxChannels int32, studioFlags StudioInitFlags, flags InitFlags) error {
	res := call("Studio_System_Initialize", s.ref, maxChannels, uint32(studioFlags), uint32(flags))
	return envStatus("Studio_System_Initialize", res)
}

func (s *system) LoadBankMemory(buffer []byte, flags LoadBankFlags) (Bank, error) {
	res := call("Studio_System_LoadBankMemory", s.ref, bytesArg(buffer), uint32(flags))
	ref, err := envRef("Studio_System_LoadBankMemory", res)
	if err != nil {
		return nil, err
	}
	return &bank{ref: ref}, nil
}

func (s *system) UnloadAll() error {
	return envStatus("Studio_System_UnloadAll", call("Studio_System_UnloadAll", s.ref))
}

func (s *system) GetEvent(pathOrID string) (EventDescription, error) {
	if err := checkString("Studio_System_GetEvent", pathOrID); err != nil {
		return nil, err
	}
	ref, err := envRef("Studio_System_GetEvent", call("Studio_System_GetEvent", s.ref, pathOrID))
	if err != nil {
		return nil, err
	}
	return &eventDescription{ref: ref}, nil
}

func (s *system) GetBus(pathOrID string) (Bus, error) {
	if err := checkString("Studio_System_GetBus", pathOrID); err != nil {
		return nil, err
	}
	ref, err := envRef("Studio_System_GetBus", call("Studio_System_GetBus", s.ref, pathOrID))
	if err != nil {
		return nil, err
	}
	return &bus{ref: ref}, nil
}

func (s *system) SetParameterByName(name string, value float32, ignoreSeekSpeed bool) error {
	if err := checkString("Studio_System_SetParameterByName", name); err != nil {
		return err
	}
	res := call("Studio_System_SetParameterByName", s.ref, name, value, ignoreSeekSpeed)
	return envStatus("Studio_System_SetParameterByName", res)
}

func (s *system) SetListenerAttributes(index int32, attributes Attributes3D) error {
	res := call("Studio_System_SetListenerAttributes", s.ref, index, attributesArg(attributes))
	return envStatus("Studio_System_SetListenerAttributes", res)
}

func (s *system) Update() error {
	return envStatus("Studio_System_Update", call("Studio_System_Update", s.ref))
}

type bank struct {
	ref js.Value
}

func (b *bank) EventCount() (int32, error) {
	return envInt("Studio_Bank_GetEventCount", call("Studio_Bank_GetEventCount", b.ref))
}

func (b *bank) EventList() ([]EventDescription, error) {
	capacity, err := b.EventCount()
	if err != nil {
		return nil, err
	}

	res := call("Studio_Bank_GetEventList", b.ref, capacity)
	refs, err := envRefList("Studio_Bank_GetEventList", res)
	if err != nil {
		return nil, err
	}

	list := make([]EventDescription, 0, len(refs))
	for _, ref := range refs {
		list = append(list, &eventDescription{ref: ref})
	}
	return list, nil
}

type eventDescription struct {
	ref js.Value
}

func (d *eventDescription) Path() (string, error) {
	return envString("Studio_EventDescription_GetPath", call("Studio_EventDescription_GetPath", d.ref))
}

func (d *eventDescription) CreateInstance() (EventInstance, error) {
	res := call("Studio_EventDescription_CreateInstance", d.ref)
	ref, err := envRef("Studio_EventDescription_CreateInstance", res)
	if err != nil {
		return nil, err
	}
	return &eventInstance{ref: ref}, nil
}

func (d *eventDescription) InstanceCount() (int32, error) {
	res := call("Studio_EventDescription_GetInstanceCount", d.ref)
	return envInt("Studio_EventDescription_GetInstanceCount", res)
}

type eventInstance struct {
	ref js.Value
}

func (i *eventInstance) Start() error {
	return envStatus("Studio_EventInstance_Start", call("Studio_EventInstance_Start", i.ref))
}

func (i *eventInstance) Release() error {
	return envStatus("Studio_EventInstance_Release", call("Studio_EventInstance_Release", i.ref))
}

func (i *eventInstance) Stop(mode StopMode) error {
	if !mode.Valid() {
		return &status.DiscriminantError{Op: "Studio_EventInstance_Stop", Enum: "StopMode", Value: int32(mode)}
	}
	return envStatus("Studio_EventInstance_Stop", call("Studio_EventInstance_Stop", i.ref, int32(mode)))
}

func (i *eventInstance) SetPaused(paused bool) error {
	return envStatus("Studio_EventInstance_SetPaused", call("Studio_EventInstance_SetPaused", i.ref, paused))
}

func (i *eventInstance) Paused() (bool, error) {
	return envBool("Studio_EventInstance_GetPaused", call("Studio_EventInstance_GetPaused", i.ref))
}

func (i *eventInstance) SetPitch(pitch float32) error {
	return envStatus("Studio_EventInstance_SetPitch", call("Studio_EventInstance_SetPitch", i.ref, pitch))
}

func (i *eventInstance) Pitch() (float32, float32, error) {
	return envFloat2("Studio_EventInstance_GetPitch", call("Studio_EventInstance_GetPitch", i.ref))
}

func (i *eventInstance) SetVolume(volume float32) error {
	return envStatus("Studio_EventInstance_SetVolume", call("Studio_EventInstance_SetVolume", i.ref, volume))
}

func (i *eventInstance) Volume() (float32, float32, error) {
	return envFloat2("Studio_EventInstance_GetVolume", call("Studio_EventInstance_GetVolume", i.ref))
}

func (i *eventInstance) Set3DAttributes(attributes Attributes3D) error {
	res := call("Studio_EventInstance_Set3DAttributes", i.ref, attributesArg(attributes))
	return envStatus("Studio_EventInstance_Set3DAttributes", res)
}

func (i *eventInstance) Get3DAttributes() (Attributes3D, error) {
	res := call("Studio_EventInstance_Get3DAttributes", i.ref)
	return envAttributes("Studio_EventInstance_Get3DAttributes", res)
}

func (i *eventInstance) SetProperty(index EventProperty, value float32) error {
	res := call("Studio_EventInstance_SetProperty", i.ref, int32(index), value)
	return envStatus("Studio_EventInstance_SetProperty", res)
}

func (i *eventInstance) Property(index EventProperty) (float32, error) {
	res := call("Studio_EventInstance_GetProperty", i.ref, int32(index))
	return envFloat("Studio_EventInstance_GetProperty", res)
}

func (i *eventInstance) SetTimelinePosition(position int32) error {
	res := call("Studio_EventInstance_SetTimelinePosition", i.ref, position)
	return envStatus("Studio_EventInstance_SetTimelinePosition", res)
}

func (i *eventInstance) TimelinePosition() (int32, error) {
	res := call("Studio_EventInstance_GetTimelinePosition", i.ref)
	return envInt("Studio_EventInstance_GetTimelinePosition", res)
}

func (i *eventInstance) SetParameterByName(name string, value float32, ignoreSeekSpeed bool) error {
	if err := checkString("Studio_EventInstance_SetParameterByName", name); err != nil {
		return err
	}
	res := call("Studio_EventInstance_SetParameterByName", i.ref, name, value, ignoreSeekSpeed)
	return envStatus("Studio_EventInstance_SetParameterByName", res)
}

func (i *eventInstance) ParameterByName(name string) (float32, float32, error) {
	if err := checkString("Studio_EventInstance_GetParameterByName", name); err != nil {
		return 0, 0, err
	}
	res := call("Studio_EventInstance_GetParameterByName", i.ref, name)
	return envFloat2("Studio_EventInstance_GetParameterByName", res)
}

func (i *eventInstance) PlaybackState() (PlaybackState, error) {
	res := call("Studio_EventInstance_GetPlaybackState", i.ref)
	return envPlaybackState("Studio_EventInstance_GetPlaybackState", res)
}

func (i *eventInstance) IsVirtual() (bool, error) {
	return envBool("Studio_EventInstance_IsVirtual", call("Studio_EventInstance_IsVirtual", i.ref))
}

type bus struct {
	ref js.Value
}

func (b *bus) SetMute(mute bool) error {
	return envStatus("Studio_Bus_SetMute", call("Studio_Bus_SetMute", b.ref, mute))
}
