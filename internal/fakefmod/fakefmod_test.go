package fakefmod

import (
	"testing"

	"github.com/audioforge/studio-bridge/fmod"
	"github.com/audioforge/studio-bridge/status"
)

func newInitializedSystem(t *testing.T) *System {
	t.Helper()
	sys := &System{}
	if err := sys.Initialize(64, fmod.StudioInitNormal, fmod.InitNormal); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return sys
}

func TestBankDataRoundTrip(t *testing.T) {
	sys := newInitializedSystem(t)

	bank, err := sys.LoadBankMemory(BankData("event:/A", "event:/B"), fmod.LoadBankNormal)
	if err != nil {
		t.Fatalf("LoadBankMemory: %v", err)
	}

	count, err := bank.EventCount()
	if err != nil {
		t.Fatalf("EventCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("EventCount = %d, want 2", count)
	}

	events, err := bank.EventList()
	if err != nil {
		t.Fatalf("EventList: %v", err)
	}
	want := []string{"event:/A", "event:/B"}
	for i, desc := range events {
		path, err := desc.Path()
		if err != nil {
			t.Fatalf("Path: %v", err)
		}
		if path != want[i] {
			t.Errorf("events[%d].Path() = %q, want %q", i, path, want[i])
		}
	}
}

func TestMalformedBankRejected(t *testing.T) {
	sys := newInitializedSystem(t)

	_, err := sys.LoadBankMemory([]byte("garbage"), fmod.LoadBankNormal)
	if !status.IsCode(err, status.ErrFormat) {
		t.Fatalf("LoadBankMemory = %v, want ERR_FORMAT", err)
	}
}

func TestDoubleInitializeRejected(t *testing.T) {
	sys := newInitializedSystem(t)

	err := sys.Initialize(64, fmod.StudioInitNormal, fmod.InitNormal)
	if !status.IsCode(err, status.ErrInitialized) {
		t.Fatalf("second Initialize = %v, want ERR_INITIALIZED", err)
	}
}

func TestFailNextAppliesOnce(t *testing.T) {
	sys := newInitializedSystem(t)

	sys.FailNext("Studio_System_Update", status.ErrInternal)
	if err := sys.Update(); !status.IsCode(err, status.ErrInternal) {
		t.Fatalf("injected Update = %v, want ERR_INTERNAL", err)
	}
	if err := sys.Update(); err != nil {
		t.Fatalf("Update after injection consumed = %v, want nil", err)
	}
}

func TestDescriptionsSharedAcrossBanks(t *testing.T) {
	sys := newInitializedSystem(t)

	if _, err := sys.LoadBankMemory(BankData("event:/A"), fmod.LoadBankNormal); err != nil {
		t.Fatalf("LoadBankMemory: %v", err)
	}
	if _, err := sys.LoadBankMemory(BankData("event:/A", "event:/B"), fmod.LoadBankNormal); err != nil {
		t.Fatalf("LoadBankMemory: %v", err)
	}

	desc, err := sys.GetEvent("event:/A")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if _, err := desc.CreateInstance(); err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	// The same description backs both banks, so the instance is visible
	// regardless of which bank it was discovered through.
	count, err := desc.InstanceCount()
	if err != nil {
		t.Fatalf("InstanceCount: %v", err)
	}
	if count != 1 {
		t.Errorf("InstanceCount = %d, want 1", count)
	}
}
