package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/audioforge/studio-bridge/engine"
	"github.com/audioforge/studio-bridge/internal/fakefmod"
)

func newTestModel(t *testing.T) (*interactiveModel, *fakefmod.System) {
	t.Helper()

	sys := &fakefmod.System{}
	eng, err := engine.NewWithSystem(sys, false)
	if err != nil {
		t.Fatalf("NewWithSystem: %v", err)
	}
	if err := eng.LoadBanksFromMemory(uuid.New(), [][]byte{fakefmod.BankData("event:/UI/Click")}); err != nil {
		t.Fatalf("LoadBanksFromMemory: %v", err)
	}
	return newInteractiveModel(eng), sys
}

func press(m *interactiveModel, key tea.KeyMsg) {
	m.Update(key)
}

func TestParamInputSurvivesInstanceReclaim(t *testing.T) {
	m, _ := newTestModel(t)

	// Play the selected event, then open parameter entry on it.
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current == nil {
		t.Fatal("no instance after play")
	}
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if m.state != stateParamInput {
		t.Fatalf("state = %d after p, want param input", m.state)
	}

	// The instance was marked for release by PlayEvent; once stopped, the
	// next frame reclaims it and the status refresh drops it.
	if err := m.current.StopImmediately(); err != nil {
		t.Fatalf("StopImmediately: %v", err)
	}
	m.Update(tickMsg(time.Now()))
	if m.current != nil {
		t.Fatal("instance still held after reclaim")
	}

	// Confirming the entry with the instance gone must report an error,
	// not panic.
	m.param.SetValue("Area=1")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.lastErr == nil {
		t.Error("no error reported for parameter entry without an instance")
	}
	if m.state != stateBrowse {
		t.Errorf("state = %d after enter, want browse", m.state)
	}
}
