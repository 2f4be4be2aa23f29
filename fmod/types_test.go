package fmod

import (
	"testing"

	"github.com/audioforge/studio-bridge/status"
)

// The middleware publishes these numeric assignments and the JS shim
// re-encodes them independently, so the Go tables must pin them exactly.
// A drift here corrupts behavior silently rather than failing loudly.

func TestInitFlagValues(t *testing.T) {
	tests := []struct {
		name string
		flag InitFlags
		want uint32
	}{
		{"normal", InitNormal, 0x00000000},
		{"stream from update", InitStreamFromUpdate, 0x00000001},
		{"mix from update", InitMixFromUpdate, 0x00000002},
		{"righthanded 3d", InitRightHanded3D, 0x00000004},
		{"clip output", InitClipOutput, 0x00000008},
		{"channel lowpass", InitChannelLowpass, 0x00000100},
		{"channel distancefilter", InitChannelDistanceFilter, 0x00000200},
		{"profile enable", InitProfileEnable, 0x00010000},
		{"vol0 becomes virtual", InitVol0BecomesVirtual, 0x00020000},
		{"geometry useclosest", InitGeometryUseClosest, 0x00040000},
		{"prefer dolby downmix", InitPreferDolbyDownmix, 0x00080000},
		{"thread unsafe", InitThreadUnsafe, 0x00100000},
		{"profile meter all", InitProfileMeterAll, 0x00200000},
		{"memory tracking", InitMemoryTracking, 0x00400000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint32(tt.flag) != tt.want {
				t.Errorf("flag = %#08x, want %#08x", uint32(tt.flag), tt.want)
			}
		})
	}
}

func TestStudioInitFlagValues(t *testing.T) {
	tests := []struct {
		name string
		flag StudioInitFlags
		want uint32
	}{
		{"normal", StudioInitNormal, 0x00000000},
		{"liveupdate", StudioInitLiveUpdate, 0x00000001},
		{"allow missing plugins", StudioInitAllowMissingPlugins, 0x00000002},
		{"synchronous update", StudioInitSynchronousUpdate, 0x00000004},
		{"deferred callbacks", StudioInitDeferredCallbacks, 0x00000008},
		{"load from update", StudioInitLoadFromUpdate, 0x00000010},
		{"memory tracking", StudioInitMemoryTracking, 0x00000020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint32(tt.flag) != tt.want {
				t.Errorf("flag = %#08x, want %#08x", uint32(tt.flag), tt.want)
			}
		})
	}
}

func TestLoadBankFlagValues(t *testing.T) {
	tests := []struct {
		name string
		flag LoadBankFlags
		want uint32
	}{
		{"normal", LoadBankNormal, 0x00000000},
		{"nonblocking", LoadBankNonBlocking, 0x00000001},
		{"decompress samples", LoadBankDecompressSamples, 0x00000002},
		{"unencrypted", LoadBankUnencrypted, 0x00000004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint32(tt.flag) != tt.want {
				t.Errorf("flag = %#08x, want %#08x", uint32(tt.flag), tt.want)
			}
		})
	}
}

func TestEnumDiscriminants(t *testing.T) {
	playback := map[PlaybackState]int32{
		PlaybackPlaying:    0,
		PlaybackSustaining: 1,
		PlaybackStopped:    2,
		PlaybackStarting:   3,
		PlaybackStopping:   4,
	}
	for state, want := range playback {
		if int32(state) != want {
			t.Errorf("playback state %s = %d, want %d", state, int32(state), want)
		}
		if !state.Valid() {
			t.Errorf("playback state %d should be valid", want)
		}
	}
	if PlaybackState(5).Valid() || PlaybackState(-1).Valid() {
		t.Error("out-of-table playback states must be invalid")
	}

	properties := map[EventProperty]int32{
		PropertyChannelPriority:   0,
		PropertyScheduleDelay:     1,
		PropertyScheduleLookahead: 2,
		PropertyMinimumDistance:   3,
		PropertyMaximumDistance:   4,
		PropertyCooldown:          5,
	}
	for prop, want := range properties {
		if int32(prop) != want {
			t.Errorf("event property %s = %d, want %d", prop, int32(prop), want)
		}
		if !prop.Valid() {
			t.Errorf("event property %d should be valid", want)
		}
	}
	if EventProperty(6).Valid() {
		t.Error("property index 6 is the count sentinel, not a property")
	}

	if int32(StopAllowFadeout) != 0 || int32(StopImmediate) != 1 {
		t.Errorf("stop modes = %d, %d; want 0, 1", StopAllowFadeout, StopImmediate)
	}
	if StopMode(2).Valid() {
		t.Error("stop mode 2 must be invalid")
	}
}

// The status table and this package share the same published source; spot
// check the codes the facades depend on so a stray edit in either table
// breaks a test rather than a game.
func TestStatusCodesAgree(t *testing.T) {
	tests := []struct {
		code status.Code
		want int32
	}{
		{status.OK, 0},
		{status.ErrInitialization, 26},
		{status.ErrInvalidHandle, 30},
		{status.ErrInvalidParam, 31},
		{status.ErrTruncated, 65},
		{status.ErrEventNotFound, 74},
		{status.ErrStudioUninitialized, 75},
		{status.ErrInvalidString, 77},
		{status.ErrTooManySamples, 81},
	}

	for _, tt := range tests {
		if int32(tt.code) != tt.want {
			t.Errorf("%s = %d, want %d", tt.code, int32(tt.code), tt.want)
		}
	}
}
