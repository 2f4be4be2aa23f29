package fakefmod

import (
	"bytes"
	"strings"

	"github.com/audioforge/studio-bridge/fmod"
	"github.com/audioforge/studio-bridge/status"
)

var bankMagic = []byte("FAKEBANK\n")

// BankData builds a bank buffer containing the given event paths. Feed the
// result to LoadBankMemory; any buffer without the fixture header is
// rejected with ERR_FORMAT.
func BankData(paths ...string) []byte {
	var buf bytes.Buffer
	buf.Write(bankMagic)
	for _, p := range paths {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// System is the scripted middleware. The zero value is ready to use.
type System struct {
	initialized bool
	studioFlags fmod.StudioInitFlags
	coreFlags   fmod.InitFlags
	maxChannels int32

	events     map[string]*eventDescription
	eventOrder []string

	globalParams map[string]float32
	listener     map[int32]fmod.Attributes3D
	muted        bool
	updates      int

	calls    []string
	failNext map[string]status.Code
}

var _ fmod.System = (*System)(nil)

// FailNext makes the next call of the named operation fail with the given
// code. Operation names are the Studio_* boundary names.
func (s *System) FailNext(op string, code status.Code) {
	if s.failNext == nil {
		s.failNext = make(map[string]status.Code)
	}
	s.failNext[op] = code
}

// Calls returns every operation invoked so far, in order.
func (s *System) Calls() []string {
	return s.calls
}

// UpdateCount returns how many Update calls reached the middleware.
func (s *System) UpdateCount() int {
	return s.updates
}

// Muted returns the master bus mute state.
func (s *System) Muted() bool {
	return s.muted
}

// GlobalParameter returns the last value set for a global parameter.
func (s *System) GlobalParameter(name string) (float32, bool) {
	v, ok := s.globalParams[strings.ToLower(name)]
	return v, ok
}

// ListenerAttributes returns the last pose committed for a listener index.
func (s *System) ListenerAttributes(index int32) (fmod.Attributes3D, bool) {
	attrs, ok := s.listener[index]
	return attrs, ok
}

// enter records the call and applies any queued failure injection.
func (s *System) enter(op string) error {
	s.calls = append(s.calls, op)
	if code, ok := s.failNext[op]; ok {
		delete(s.failNext, op)
		return status.Check(op, int32(code))
	}
	return nil
}

func (s *System) Initialize(maxChannels int32, studioFlags fmod.StudioInitFlags, flags fmod.InitFlags) error {
	if err := s.enter("Studio_System_Initialize"); err != nil {
		return err
	}
	if s.initialized {
		return status.Check("Studio_System_Initialize", int32(status.ErrInitialized))
	}
	s.initialized = true
	s.maxChannels = maxChannels
	s.studioFlags = studioFlags
	s.coreFlags = flags
	s.events = make(map[string]*eventDescription)
	s.globalParams = make(map[string]float32)
	s.listener = make(map[int32]fmod.Attributes3D)
	return nil
}

func (s *System) LoadBankMemory(buffer []byte, _ fmod.LoadBankFlags) (fmod.Bank, error) {
	if err := s.enter("Studio_System_LoadBankMemory"); err != nil {
		return nil, err
	}
	if !s.initialized {
		return nil, status.Check("Studio_System_LoadBankMemory", int32(status.ErrStudioUninitialized))
	}
	if !bytes.HasPrefix(buffer, bankMagic) {
		return nil, status.Check("Studio_System_LoadBankMemory", int32(status.ErrFormat))
	}

	bank := &bank{}
	for _, line := range bytes.Split(buffer[len(bankMagic):], []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		path := string(line)
		desc, ok := s.events[path]
		if !ok {
			desc = &eventDescription{sys: s, path: path}
			s.events[path] = desc
			s.eventOrder = append(s.eventOrder, path)
		}
		bank.events = append(bank.events, desc)
	}
	return bank, nil
}

func (s *System) UnloadAll() error {
	if err := s.enter("Studio_System_UnloadAll"); err != nil {
		return err
	}
	s.events = make(map[string]*eventDescription)
	s.eventOrder = nil
	return nil
}

func (s *System) GetEvent(pathOrID string) (fmod.EventDescription, error) {
	if err := s.enter("Studio_System_GetEvent"); err != nil {
		return nil, err
	}
	desc, ok := s.events[pathOrID]
	if !ok {
		return nil, status.Check("Studio_System_GetEvent", int32(status.ErrEventNotFound))
	}
	return desc, nil
}

func (s *System) GetBus(pathOrID string) (fmod.Bus, error) {
	if err := s.enter("Studio_System_GetBus"); err != nil {
		return nil, err
	}
	if pathOrID != "bus:/" {
		return nil, status.Check("Studio_System_GetBus", int32(status.ErrEventNotFound))
	}
	return &bus{sys: s}, nil
}

func (s *System) SetParameterByName(name string, value float32, _ bool) error {
	if err := s.enter("Studio_System_SetParameterByName"); err != nil {
		return err
	}
	s.globalParams[strings.ToLower(name)] = value
	return nil
}

func (s *System) SetListenerAttributes(index int32, attributes fmod.Attributes3D) error {
	if err := s.enter("Studio_System_SetListenerAttributes"); err != nil {
		return err
	}
	s.listener[index] = attributes
	return nil
}

// Update advances every live instance one frame: pending starts and stops
// land, final values converge, and released stopped instances are
// reclaimed.
func (s *System) Update() error {
	if err := s.enter("Studio_System_Update"); err != nil {
		return err
	}
	s.updates++
	for _, path := range s.eventOrder {
		desc := s.events[path]
		live := desc.instances[:0]
		for _, inst := range desc.instances {
			inst.step()
			if !inst.reclaimed {
				live = append(live, inst)
			}
		}
		desc.instances = live
	}
	return nil
}

type bank struct {
	events []*eventDescription
}

var _ fmod.Bank = (*bank)(nil)

func (b *bank) EventCount() (int32, error) {
	return int32(len(b.events)), nil
}

func (b *bank) EventList() ([]fmod.EventDescription, error) {
	list := make([]fmod.EventDescription, 0, len(b.events))
	for _, desc := range b.events {
		list = append(list, desc)
	}
	return list, nil
}

type eventDescription struct {
	sys       *System
	path      string
	instances []*Instance
}

var _ fmod.EventDescription = (*eventDescription)(nil)

func (d *eventDescription) Path() (string, error) {
	if err := d.sys.enter("Studio_EventDescription_GetPath"); err != nil {
		return "", err
	}
	return d.path, nil
}

func (d *eventDescription) CreateInstance() (fmod.EventInstance, error) {
	if err := d.sys.enter("Studio_EventDescription_CreateInstance"); err != nil {
		return nil, err
	}
	inst := &Instance{
		desc:        d,
		state:       fmod.PlaybackStopped,
		pitch:       1,
		finalPitch:  1,
		volume:      1,
		finalVolume: 1,
		modulation:  1,
		params:      make(map[string]*parameter),
		props:       make(map[fmod.EventProperty]float32),
	}
	d.instances = append(d.instances, inst)
	return inst, nil
}

func (d *eventDescription) InstanceCount() (int32, error) {
	if err := d.sys.enter("Studio_EventDescription_GetInstanceCount"); err != nil {
		return 0, err
	}
	return int32(len(d.instances)), nil
}

type bus struct {
	sys *System
}

var _ fmod.Bus = (*bus)(nil)

func (b *bus) SetMute(mute bool) error {
	if err := b.sys.enter("Studio_Bus_SetMute"); err != nil {
		return err
	}
	b.sys.muted = mute
	return nil
}
