package engine

import (
	"testing"

	"github.com/audioforge/studio-bridge/fmod"
	"github.com/audioforge/studio-bridge/internal/fakefmod"
	"github.com/audioforge/studio-bridge/status"
)

func newTestInstance(t *testing.T) (*Engine, *EventInstance) {
	t.Helper()

	eng, _ := newTestEngine(t, "event:/Weapons/Pistol")
	inst, err := eng.CreateEventInstance("event:/Weapons/Pistol")
	if err != nil {
		t.Fatalf("CreateEventInstance: %v", err)
	}
	return eng, inst
}

func TestPitchRoundTrip(t *testing.T) {
	eng, inst := newTestInstance(t)

	if err := inst.SetPitch(1.5); err != nil {
		t.Fatalf("SetPitch: %v", err)
	}
	got, err := inst.Pitch()
	if err != nil {
		t.Fatalf("Pitch: %v", err)
	}
	if got != 1.5 {
		t.Fatalf("Pitch = %v, want 1.5", got)
	}

	// Without modulation the final pitch converges to the set value after
	// one frame.
	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	final, err := inst.FinalPitch()
	if err != nil {
		t.Fatalf("FinalPitch: %v", err)
	}
	if final != 1.5 {
		t.Errorf("FinalPitch = %v, want 1.5", final)
	}
}

func TestFinalPitchDivergesOnlyAfterUpdate(t *testing.T) {
	eng, inst := newTestInstance(t)

	if err := inst.SetPitch(2); err != nil {
		t.Fatalf("SetPitch: %v", err)
	}
	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	inst.Inner().(*fakefmod.Instance).ModulatePitch(0.5)

	// Modulation is recalculated per frame; before the next Update the
	// final value is unchanged.
	final, err := inst.FinalPitch()
	if err != nil {
		t.Fatalf("FinalPitch: %v", err)
	}
	if final != 2 {
		t.Fatalf("FinalPitch = %v before Update, want 2", final)
	}

	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	final, err = inst.FinalPitch()
	if err != nil {
		t.Fatalf("FinalPitch: %v", err)
	}
	if final != 1 {
		t.Errorf("FinalPitch = %v after Update, want 1", final)
	}

	// The set value never includes modulation.
	set, err := inst.Pitch()
	if err != nil {
		t.Fatalf("Pitch: %v", err)
	}
	if set != 2 {
		t.Errorf("Pitch = %v, want 2", set)
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	eng, inst := newTestInstance(t)

	if err := inst.SetVolume(0.25); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}
	got, err := inst.Volume()
	if err != nil {
		t.Fatalf("Volume: %v", err)
	}
	if got != 0.25 {
		t.Fatalf("Volume = %v, want 0.25", got)
	}

	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	final, err := inst.FinalVolume()
	if err != nil {
		t.Fatalf("FinalVolume: %v", err)
	}
	if final != 0.25 {
		t.Errorf("FinalVolume = %v, want 0.25", final)
	}
}

func TestParameterCaseInsensitive(t *testing.T) {
	_, inst := newTestInstance(t)

	if err := inst.SetParameterByName("Surface", 3, false); err != nil {
		t.Fatalf("SetParameterByName: %v", err)
	}
	got, err := inst.ParameterByName("sUrFaCe")
	if err != nil {
		t.Fatalf("ParameterByName: %v", err)
	}
	if got != 3 {
		t.Errorf("ParameterByName = %v, want 3", got)
	}
}

func TestParameterAppliedImmediatelyWhileStopped(t *testing.T) {
	_, inst := newTestInstance(t)

	// The instance has not been started, so it is stopped and the value
	// lands in the final immediately, seek speed notwithstanding.
	if err := inst.SetParameterByName("Surface", 7, false); err != nil {
		t.Fatalf("SetParameterByName: %v", err)
	}
	final, err := inst.FinalParameterByName("Surface")
	if err != nil {
		t.Fatalf("FinalParameterByName: %v", err)
	}
	if final != 7 {
		t.Errorf("FinalParameterByName = %v while stopped, want 7", final)
	}
}

func TestParameterUnknownName(t *testing.T) {
	_, inst := newTestInstance(t)

	_, err := inst.ParameterByName("NoSuchParameter")
	if !status.IsCode(err, status.ErrEventNotFound) {
		t.Fatalf("ParameterByName = %v, want ERR_EVENT_NOTFOUND", err)
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	_, inst := newTestInstance(t)

	if err := inst.SetProperty(fmod.PropertyCooldown, 0.5); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	got, err := inst.Property(fmod.PropertyCooldown)
	if err != nil {
		t.Fatalf("Property: %v", err)
	}
	if got != 0.5 {
		t.Errorf("Property = %v, want 0.5", got)
	}
}

func TestTimelinePositionRoundTrip(t *testing.T) {
	_, inst := newTestInstance(t)

	if err := inst.SetTimelinePosition(1250); err != nil {
		t.Fatalf("SetTimelinePosition: %v", err)
	}
	got, err := inst.TimelinePosition()
	if err != nil {
		t.Fatalf("TimelinePosition: %v", err)
	}
	if got != 1250 {
		t.Errorf("TimelinePosition = %v, want 1250", got)
	}
}

func TestPauseIsIndependentOfPlaybackState(t *testing.T) {
	eng, inst := newTestInstance(t)

	if err := inst.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := inst.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}

	paused, err := inst.IsPaused()
	if err != nil {
		t.Fatalf("IsPaused: %v", err)
	}
	if !paused {
		t.Fatal("IsPaused = false after Pause")
	}

	state, err := inst.PlaybackState()
	if err != nil {
		t.Fatalf("PlaybackState: %v", err)
	}
	if state != fmod.PlaybackPlaying {
		t.Errorf("PlaybackState = %s while paused, want playing", state)
	}

	if err := inst.Unpause(); err != nil {
		t.Fatalf("Unpause: %v", err)
	}
	paused, err = inst.IsPaused()
	if err != nil {
		t.Fatalf("IsPaused: %v", err)
	}
	if paused {
		t.Error("IsPaused = true after Unpause")
	}
}

func TestStopWithFadeoutPassesThroughStopping(t *testing.T) {
	eng, inst := newTestInstance(t)

	if err := inst.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := inst.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	state, err := inst.PlaybackState()
	if err != nil {
		t.Fatalf("PlaybackState: %v", err)
	}
	if state != fmod.PlaybackStopping {
		t.Fatalf("PlaybackState = %s right after Stop, want stopping", state)
	}

	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	state, err = inst.PlaybackState()
	if err != nil {
		t.Fatalf("PlaybackState: %v", err)
	}
	if state != fmod.PlaybackStopped {
		t.Errorf("PlaybackState = %s after Update, want stopped", state)
	}
}

func TestReleasedStoppedInstanceIsReclaimed(t *testing.T) {
	eng, inst := newTestInstance(t)

	if err := inst.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := inst.StopImmediately(); err != nil {
		t.Fatalf("StopImmediately: %v", err)
	}
	if err := inst.MarkForRelease(); err != nil {
		t.Fatalf("MarkForRelease: %v", err)
	}

	state, err := inst.PlaybackState()
	if err != nil {
		t.Fatalf("PlaybackState: %v", err)
	}
	if state != fmod.PlaybackStopped {
		t.Fatalf("PlaybackState = %s after immediate stop, want stopped", state)
	}

	if err := eng.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// The middleware reclaimed the handle; every operation now fails.
	if err := inst.SetPitch(1.1); !status.IsCode(err, status.ErrInvalidHandle) {
		t.Errorf("SetPitch on reclaimed instance = %v, want ERR_INVALID_HANDLE", err)
	}
	if _, err := inst.PlaybackState(); !status.IsCode(err, status.ErrInvalidHandle) {
		t.Errorf("PlaybackState on reclaimed instance = %v, want ERR_INVALID_HANDLE", err)
	}

	count, err := eng.EventInstanceCount("event:/Weapons/Pistol")
	if err != nil {
		t.Fatalf("EventInstanceCount: %v", err)
	}
	if count != 0 {
		t.Errorf("EventInstanceCount = %d after reclaim, want 0", count)
	}
}

func TestIsVirtual(t *testing.T) {
	_, inst := newTestInstance(t)

	virtual, err := inst.IsVirtual()
	if err != nil {
		t.Fatalf("IsVirtual: %v", err)
	}
	if virtual {
		t.Fatal("fresh instance reported virtual")
	}

	inst.Inner().(*fakefmod.Instance).SetVirtual(true)
	virtual, err = inst.IsVirtual()
	if err != nil {
		t.Fatalf("IsVirtual: %v", err)
	}
	if !virtual {
		t.Error("IsVirtual = false after virtualization")
	}
}
