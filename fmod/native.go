//go:build !js

package fmod

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/audioforge/studio-bridge/status"
)

// Header version the binding was written against, in FMOD's 0xaaaabbcc
// encoding. Passed to FMOD_Studio_System_Create so the library can reject a
// mismatched client.
const headerVersion uint32 = 0x00020210

// C layout mirrors for struct pointer arguments. Field order matches
// FMOD_VECTOR and FMOD_3D_ATTRIBUTES exactly.
type cVector struct {
	x, y, z float32
}

type cAttributes3D struct {
	position cVector
	velocity cVector
	forward  cVector
	up       cVector
}

func toC(a Attributes3D) cAttributes3D {
	return cAttributes3D{
		position: cVector{a.Position.X, a.Position.Y, a.Position.Z},
		velocity: cVector{a.Velocity.X, a.Velocity.Y, a.Velocity.Z},
		forward:  cVector{a.Forward.X, a.Forward.Y, a.Forward.Z},
		up:       cVector{a.Up.X, a.Up.Y, a.Up.Z},
	}
}

func fromC(a cAttributes3D) Attributes3D {
	return Attributes3D{
		Position: Vector{a.position.x, a.position.y, a.position.z},
		Velocity: Vector{a.velocity.x, a.velocity.y, a.velocity.z},
		Forward:  Vector{a.forward.x, a.forward.y, a.forward.z},
		Up:       Vector{a.up.x, a.up.y, a.up.z},
	}
}

// Entry points registered against libfmodstudio. Out-parameters and struct
// pointers are passed as uintptr; strings are converted by purego.
var (
	fnSystemCreate                 func(system uintptr, version uint32) int32
	fnSystemInitialize             func(system uintptr, maxChannels int32, studioFlags uint32, flags uint32, extraDriverData uintptr) int32
	fnSystemLoadBankMemory         func(system uintptr, buffer uintptr, length int32, mode int32, flags uint32, bank uintptr) int32
	fnSystemUnloadAll              func(system uintptr) int32
	fnSystemGetEvent               func(system uintptr, path string, description uintptr) int32
	fnSystemGetBus                 func(system uintptr, path string, bus uintptr) int32
	fnSystemSetParameterByName     func(system uintptr, name string, value float32, ignoreSeekSpeed bool) int32
	fnSystemSetListenerAttributes  func(system uintptr, index int32, attributes uintptr, attenuationPosition uintptr) int32
	fnSystemUpdate                 func(system uintptr) int32
	fnBankGetEventCount            func(bank uintptr, count uintptr) int32
	fnBankGetEventList             func(bank uintptr, array uintptr, capacity int32, count uintptr) int32
	fnDescriptionGetPath           func(description uintptr, path uintptr, size int32, retrieved uintptr) int32
	fnDescriptionCreateInstance    func(description uintptr, instance uintptr) int32
	fnDescriptionGetInstanceCount  func(description uintptr, count uintptr) int32
	fnInstanceStart                func(instance uintptr) int32
	fnInstanceRelease              func(instance uintptr) int32
	fnInstanceStop                 func(instance uintptr, mode int32) int32
	fnInstanceSetPaused            func(instance uintptr, paused bool) int32
	fnInstanceGetPaused            func(instance uintptr, paused uintptr) int32
	fnInstanceSetPitch             func(instance uintptr, pitch float32) int32
	fnInstanceGetPitch             func(instance uintptr, pitch uintptr, finalPitch uintptr) int32
	fnInstanceSetVolume            func(instance uintptr, volume float32) int32
	fnInstanceGetVolume            func(instance uintptr, volume uintptr, finalVolume uintptr) int32
	fnInstanceSet3DAttributes      func(instance uintptr, attributes uintptr) int32
	fnInstanceGet3DAttributes      func(instance uintptr, attributes uintptr) int32
	fnInstanceSetProperty          func(instance uintptr, index int32, value float32) int32
	fnInstanceGetProperty          func(instance uintptr, index int32, value uintptr) int32
	fnInstanceSetTimelinePosition  func(instance uintptr, position int32) int32
	fnInstanceGetTimelinePosition  func(instance uintptr, position uintptr) int32
	fnInstanceSetParameterByName   func(instance uintptr, name string, value float32, ignoreSeekSpeed bool) int32
	fnInstanceGetParameterByName   func(instance uintptr, name string, value uintptr, finalValue uintptr) int32
	fnInstanceGetPlaybackState     func(instance uintptr, state uintptr) int32
	fnInstanceIsVirtual            func(instance uintptr, virtualState uintptr) int32
	fnBusSetMute                   func(bus uintptr, mute bool) int32
)

var (
	libOnce sync.Once
	libErr  error
)

func loadLibrary() error {
	libOnce.Do(func() {
		handle, err := openLibrary(libraryPath())
		if err != nil {
			libErr = err
			return
		}

		purego.RegisterLibFunc(&fnSystemCreate, handle, "FMOD_Studio_System_Create")
		purego.RegisterLibFunc(&fnSystemInitialize, handle, "FMOD_Studio_System_Initialize")
		purego.RegisterLibFunc(&fnSystemLoadBankMemory, handle, "FMOD_Studio_System_LoadBankMemory")
		purego.RegisterLibFunc(&fnSystemUnloadAll, handle, "FMOD_Studio_System_UnloadAll")
		purego.RegisterLibFunc(&fnSystemGetEvent, handle, "FMOD_Studio_System_GetEvent")
		purego.RegisterLibFunc(&fnSystemGetBus, handle, "FMOD_Studio_System_GetBus")
		purego.RegisterLibFunc(&fnSystemSetParameterByName, handle, "FMOD_Studio_System_SetParameterByName")
		purego.RegisterLibFunc(&fnSystemSetListenerAttributes, handle, "FMOD_Studio_System_SetListenerAttributes")
		purego.RegisterLibFunc(&fnSystemUpdate, handle, "FMOD_Studio_System_Update")
		purego.RegisterLibFunc(&fnBankGetEventCount, handle, "FMOD_Studio_Bank_GetEventCount")
		purego.RegisterLibFunc(&fnBankGetEventList, handle, "FMOD_Studio_Bank_GetEventList")
		purego.RegisterLibFunc(&fnDescriptionGetPath, handle, "FMOD_Studio_EventDescription_GetPath")
		purego.RegisterLibFunc(&fnDescriptionCreateInstance, handle, "FMOD_Studio_EventDescription_CreateInstance")
		purego.RegisterLibFunc(&fnDescriptionGetInstanceCount, handle, "FMOD_Studio_EventDescription_GetInstanceCount")
		purego.RegisterLibFunc(&fnInstanceStart, handle, "FMOD_Studio_EventInstance_Start")
		purego.RegisterLibFunc(&fnInstanceRelease, handle, "FMOD_Studio_EventInstance_Release")
		purego.RegisterLibFunc(&fnInstanceStop, handle, "FMOD_Studio_EventInstance_Stop")
		purego.RegisterLibFunc(&fnInstanceSetPaused, handle, "FMOD_Studio_EventInstance_SetPaused")
		purego.RegisterLibFunc(&fnInstanceGetPaused, handle, "FMOD_Studio_EventInstance_GetPaused")
		purego.RegisterLibFunc(&fnInstanceSetPitch, handle, "FMOD_Studio_EventInstance_SetPitch")
		purego.RegisterLibFunc(&fnInstanceGetPitch, handle, "FMOD_Studio_EventInstance_GetPitch")
		purego.RegisterLibFunc(&fnInstanceSetVolume, handle, "FMOD_Studio_EventInstance_SetVolume")
		purego.RegisterLibFunc(&fnInstanceGetVolume, handle, "FMOD_Studio_EventInstance_GetVolume")
		purego.RegisterLibFunc(&fnInstanceSet3DAttributes, handle, "FMOD_Studio_EventInstance_Set3DAttributes")
		purego.RegisterLibFunc(&fnInstanceGet3DAttributes, handle, "FMOD_Studio_EventInstance_Get3DAttributes")
		purego.RegisterLibFunc(&fnInstanceSetProperty, handle, "FMOD_Studio_EventInstance_SetProperty")
		purego.RegisterLibFunc(&fnInstanceGetProperty, handle, "FMOD_Studio_EventInstance_GetProperty")
		purego.RegisterLibFunc(&fnInstanceSetTimelinePosition, handle, "FMOD_Studio_EventInstance_SetTimelinePosition")
		purego.RegisterLibFunc(&fnInstanceGetTimelinePosition, handle, "FMOD_Studio_EventInstance_GetTimelinePosition")
		purego.RegisterLibFunc(&fnInstanceSetParameterByName, handle, "FMOD_Studio_EventInstance_SetParameterByName")
		purego.RegisterLibFunc(&fnInstanceGetParameterByName, handle, "FMOD_Studio_EventInstance_GetParameterByName")
		purego.RegisterLibFunc(&fnInstanceGetPlaybackState, handle, "FMOD_Studio_EventInstance_GetPlaybackState")
		purego.RegisterLibFunc(&fnInstanceIsVirtual, handle, "FMOD_Studio_EventInstance_IsVirtual")
		purego.RegisterLibFunc(&fnBusSetMute, handle, "FMOD_Studio_Bus_SetMute")

		Logger().Debug("fmodstudio library loaded", zap.String("path", libraryPath()))
	})
	return libErr
}

// NewSystem creates the Studio system through the native FFI binding.
func NewSystem() (System, error) {
	if err := loadLibrary(); err != nil {
		return nil, err
	}

	var handle uintptr
	raw := fnSystemCreate(uintptr(unsafe.Pointer(&handle)), headerVersion)
	if err := status.Check("Studio_System_Create", raw); err != nil {
		return nil, err
	}
	return &system{handle: handle}, nil
}

type system struct {
	handle uintptr
}

func (s *system) Initialize(maxChannels int32, studioFlags StudioInitFlags, flags InitFlags) error {
	raw := fnSystemInitialize(s.handle, maxChannels, uint32(studioFlags), uint32(flags), 0)
	return status.Check("Studio_System_Initialize", raw)
}

func (s *system) LoadBankMemory(buffer []byte, flags LoadBankFlags) (Bank, error) {
	if len(buffer) == 0 {
		return nil, status.Check("Studio_System_LoadBankMemory", int32(status.ErrFileBad))
	}

	// Mode 0 is FMOD_STUDIO_LOAD_MEMORY: the middleware takes its own copy.
	var bankHandle uintptr
	raw := fnSystemLoadBankMemory(s.handle,
		uintptr(unsafe.Pointer(&buffer[0])), int32(len(buffer)),
		0, uint32(flags),
		uintptr(unsafe.Pointer(&bankHandle)))
	runtime.KeepAlive(buffer)

	if err := status.Check("Studio_System_LoadBankMemory", raw); err != nil {
		return nil, err
	}
	return &bank{handle: bankHandle}, nil
}

func (s *system) UnloadAll() error {
	return status.Check("Studio_System_UnloadAll", fnSystemUnloadAll(s.handle))
}

func (s *system) GetEvent(pathOrID string) (EventDescription, error) {
	if err := checkString("Studio_System_GetEvent", pathOrID); err != nil {
		return nil, err
	}
	var desc uintptr
	raw := fnSystemGetEvent(s.handle, pathOrID, uintptr(unsafe.Pointer(&desc)))
	if err := status.Check("Studio_System_GetEvent", raw); err != nil {
		return nil, err
	}
	return &eventDescription{handle: desc}, nil
}

func (s *system) GetBus(pathOrID string) (Bus, error) {
	if err := checkString("Studio_System_GetBus", pathOrID); err != nil {
		return nil, err
	}
	var busHandle uintptr
	raw := fnSystemGetBus(s.handle, pathOrID, uintptr(unsafe.Pointer(&busHandle)))
	if err := status.Check("Studio_System_GetBus", raw); err != nil {
		return nil, err
	}
	return &bus{handle: busHandle}, nil
}

func (s *system) SetParameterByName(name string, value float32, ignoreSeekSpeed bool) error {
	if err := checkString("Studio_System_SetParameterByName", name); err != nil {
		return err
	}
	raw := fnSystemSetParameterByName(s.handle, name, value, ignoreSeekSpeed)
	return status.Check("Studio_System_SetParameterByName", raw)
}

func (s *system) SetListenerAttributes(index int32, attributes Attributes3D) error {
	attrs := toC(attributes)
	raw := fnSystemSetListenerAttributes(s.handle, index, uintptr(unsafe.Pointer(&attrs)), 0)
	runtime.KeepAlive(&attrs)
	return status.Check("Studio_System_SetListenerAttributes", raw)
}

func (s *system) Update() error {
	return status.Check("Studio_System_Update", fnSystemUpdate(s.handle))
}

type bank struct {
	handle uintptr
}

func (b *bank) EventCount() (int32, error) {
	var count int32
	raw := fnBankGetEventCount(b.handle, uintptr(unsafe.Pointer(&count)))
	if err := status.Check("Studio_Bank_GetEventCount", raw); err != nil {
		return 0, err
	}
	return count, nil
}

func (b *bank) EventList() ([]EventDescription, error) {
	capacity, err := b.EventCount()
	if err != nil {
		return nil, err
	}
	if capacity == 0 {
		return nil, nil
	}

	handles := make([]uintptr, capacity)
	var written int32
	raw := fnBankGetEventList(b.handle,
		uintptr(unsafe.Pointer(&handles[0])), capacity,
		uintptr(unsafe.Pointer(&written)))
	if err := status.Check("Studio_Bank_GetEventList", raw); err != nil {
		return nil, err
	}

	if written > capacity {
		written = capacity
	}
	list := make([]EventDescription, 0, written)
	for _, h := range handles[:written] {
		list = append(list, &eventDescription{handle: h})
	}
	return list, nil
}

type eventDescription struct {
	handle uintptr
}

func (d *eventDescription) Path() (string, error) {
	// The middleware reports ERR_TRUNCATED with the required size when the
	// buffer is too small; retry once with the size it asked for.
	buf := make([]byte, 256)
	for {
		var retrieved int32
		raw := fnDescriptionGetPath(d.handle,
			uintptr(unsafe.Pointer(&buf[0])), int32(len(buf)),
			uintptr(unsafe.Pointer(&retrieved)))

		code := status.CodeFromInt(raw)
		if code == status.ErrTruncated && int(retrieved) > len(buf) {
			buf = make([]byte, retrieved)
			continue
		}
		if err := status.Check("Studio_EventDescription_GetPath", raw); err != nil {
			return "", err
		}

		n := int(retrieved) - 1 // retrieved counts the terminator
		if n < 0 || n > len(buf) {
			n = 0
			for n < len(buf) && buf[n] != 0 {
				n++
			}
		}
		return decodePath(buf[:n])
	}
}

func (d *eventDescription) CreateInstance() (EventInstance, error) {
	var inst uintptr
	raw := fnDescriptionCreateInstance(d.handle, uintptr(unsafe.Pointer(&inst)))
	if err := status.Check("Studio_EventDescription_CreateInstance", raw); err != nil {
		return nil, err
	}
	return &eventInstance{handle: inst}, nil
}

func (d *eventDescription) InstanceCount() (int32, error) {
	var count int32
	raw := fnDescriptionGetInstanceCount(d.handle, uintptr(unsafe.Pointer(&count)))
	if err := status.Check("Studio_EventDescription_GetInstanceCount", raw); err != nil {
		return 0, err
	}
	return count, nil
}

type eventInstance struct {
	handle uintptr
}

func (i *eventInstance) Start() error {
	return status.Check("Studio_EventInstance_Start", fnInstanceStart(i.handle))
}

func (i *eventInstance) Release() error {
	return status.Check("Studio_EventInstance_Release", fnInstanceRelease(i.handle))
}

func (i *eventInstance) Stop(mode StopMode) error {
	return status.Check("Studio_EventInstance_Stop", fnInstanceStop(i.handle, int32(mode)))
}

func (i *eventInstance) SetPaused(paused bool) error {
	return status.Check("Studio_EventInstance_SetPaused", fnInstanceSetPaused(i.handle, paused))
}

func (i *eventInstance) Paused() (bool, error) {
	var paused int32
	raw := fnInstanceGetPaused(i.handle, uintptr(unsafe.Pointer(&paused)))
	if err := status.Check("Studio_EventInstance_GetPaused", raw); err != nil {
		return false, err
	}
	return paused != 0, nil
}

func (i *eventInstance) SetPitch(pitch float32) error {
	return status.Check("Studio_EventInstance_SetPitch", fnInstanceSetPitch(i.handle, pitch))
}

func (i *eventInstance) Pitch() (float32, float32, error) {
	var value, finalValue float32
	raw := fnInstanceGetPitch(i.handle,
		uintptr(unsafe.Pointer(&value)), uintptr(unsafe.Pointer(&finalValue)))
	if err := status.Check("Studio_EventInstance_GetPitch", raw); err != nil {
		return 0, 0, err
	}
	return value, finalValue, nil
}

func (i *eventInstance) SetVolume(volume float32) error {
	return status.Check("Studio_EventInstance_SetVolume", fnInstanceSetVolume(i.handle, volume))
}

func (i *eventInstance) Volume() (float32, float32, error) {
	var value, finalValue float32
	raw := fnInstanceGetVolume(i.handle,
		uintptr(unsafe.Pointer(&value)), uintptr(unsafe.Pointer(&finalValue)))
	if err := status.Check("Studio_EventInstance_GetVolume", raw); err != nil {
		return 0, 0, err
	}
	return value, finalValue, nil
}

func (i *eventInstance) Set3DAttributes(attributes Attributes3D) error {
	attrs := toC(attributes)
	raw := fnInstanceSet3DAttributes(i.handle, uintptr(unsafe.Pointer(&attrs)))
	runtime.KeepAlive(&attrs)
	return status.Check("Studio_EventInstance_Set3DAttributes", raw)
}

func (i *eventInstance) Get3DAttributes() (Attributes3D, error) {
	var attrs cAttributes3D
	raw := fnInstanceGet3DAttributes(i.handle, uintptr(unsafe.Pointer(&attrs)))
	if err := status.Check("Studio_EventInstance_Get3DAttributes", raw); err != nil {
		return Attributes3D{}, err
	}
	return fromC(attrs), nil
}

func (i *eventInstance) SetProperty(index EventProperty, value float32) error {
	raw := fnInstanceSetProperty(i.handle, int32(index), value)
	return status.Check("Studio_EventInstance_SetProperty", raw)
}

func (i *eventInstance) Property(index EventProperty) (float32, error) {
	var value float32
	raw := fnInstanceGetProperty(i.handle, int32(index), uintptr(unsafe.Pointer(&value)))
	if err := status.Check("Studio_EventInstance_GetProperty", raw); err != nil {
		return 0, err
	}
	return value, nil
}

func (i *eventInstance) SetTimelinePosition(position int32) error {
	raw := fnInstanceSetTimelinePosition(i.handle, position)
	return status.Check("Studio_EventInstance_SetTimelinePosition", raw)
}

func (i *eventInstance) TimelinePosition() (int32, error) {
	var position int32
	raw := fnInstanceGetTimelinePosition(i.handle, uintptr(unsafe.Pointer(&position)))
	if err := status.Check("Studio_EventInstance_GetTimelinePosition", raw); err != nil {
		return 0, err
	}
	return position, nil
}

func (i *eventInstance) SetParameterByName(name string, value float32, ignoreSeekSpeed bool) error {
	if err := checkString("Studio_EventInstance_SetParameterByName", name); err != nil {
		return err
	}
	raw := fnInstanceSetParameterByName(i.handle, name, value, ignoreSeekSpeed)
	return status.Check("Studio_EventInstance_SetParameterByName", raw)
}

func (i *eventInstance) ParameterByName(name string) (float32, float32, error) {
	if err := checkString("Studio_EventInstance_GetParameterByName", name); err != nil {
		return 0, 0, err
	}
	var value, finalValue float32
	raw := fnInstanceGetParameterByName(i.handle, name,
		uintptr(unsafe.Pointer(&value)), uintptr(unsafe.Pointer(&finalValue)))
	if err := status.Check("Studio_EventInstance_GetParameterByName", raw); err != nil {
		return 0, 0, err
	}
	return value, finalValue, nil
}

func (i *eventInstance) PlaybackState() (PlaybackState, error) {
	var state int32
	raw := fnInstanceGetPlaybackState(i.handle, uintptr(unsafe.Pointer(&state)))
	if err := status.Check("Studio_EventInstance_GetPlaybackState", raw); err != nil {
		return PlaybackStopped, err
	}
	ps := PlaybackState(state)
	if !ps.Valid() {
		return PlaybackStopped, &status.DiscriminantError{
			Op:    "Studio_EventInstance_GetPlaybackState",
			Enum:  "PlaybackState",
			Value: state,
		}
	}
	return ps, nil
}

func (i *eventInstance) IsVirtual() (bool, error) {
	var virtualState int32
	raw := fnInstanceIsVirtual(i.handle, uintptr(unsafe.Pointer(&virtualState)))
	if err := status.Check("Studio_EventInstance_IsVirtual", raw); err != nil {
		return false, err
	}
	return virtualState != 0, nil
}

type bus struct {
	handle uintptr
}

func (b *bus) SetMute(mute bool) error {
	return status.Check("Studio_Bus_SetMute", fnBusSetMute(b.handle, mute))
}
