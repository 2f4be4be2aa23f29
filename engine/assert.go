//go:build debug

package engine

import (
	"fmt"
	"math"
	"strings"
)

// Programmer-error checks, compiled in only under -tags debug. Release
// builds pass these values straight through to the middleware.

func assertEventPath(eventName string) {
	if !strings.HasPrefix(eventName, "event:/") {
		panic(fmt.Sprintf("all event paths begin with `event:/`, got %q", eventName))
	}
}

func assertPitch(pitch float32) {
	if pitch < 0 {
		panic(fmt.Sprintf("pitch multiplier must be >= 0, got %v", pitch))
	}
}

func assertTimeline(position uint32) {
	if position > math.MaxInt32 {
		panic(fmt.Sprintf("timeline position %d exceeds the middleware's signed 32-bit cursor", position))
	}
}
