package main

import (
	"fmt"
	"time"

	studiobridge "github.com/audioforge/studio-bridge"
	"github.com/audioforge/studio-bridge/engine"
	"github.com/audioforge/studio-bridge/fmod"
)

// The scripted mode walks the whole API surface one operation at a time,
// pumping Update in between so asynchronous effects (final values, state
// transitions, reclamation) are visible in the printed results.

const (
	tickRate      = 144
	ticksPerStep  = 144
	demoEventPath = "event:/Music/Level 02"
)

type game struct {
	eng     *engine.Engine
	current *engine.EventInstance
}

type step func(g *game)

func call(name string, err error) {
	if err != nil {
		fmt.Printf("- %s -> %v\n", name, err)
		return
	}
	fmt.Printf("- %s\n", name)
}

func query[T any](name string, value T, err error) {
	if err != nil {
		fmt.Printf("- %s -> %v\n", name, err)
		return
	}
	fmt.Printf("- %s -> %v\n", name, value)
}

func steps() []step {
	return []step{
		func(g *game) {
			fmt.Printf("- EventNames() -> %q\n", g.eng.EventNames())
		},
		func(g *game) {
			inst, err := g.eng.PlayEvent(demoEventPath)
			call(fmt.Sprintf("PlayEvent(%q)", demoEventPath), err)
			g.current = inst
		},
		func(g *game) { call("SetGlobalMute(true)", g.eng.SetGlobalMute(true)) },
		func(g *game) { call("SetGlobalMute(false)", g.eng.SetGlobalMute(false)) },
		func(g *game) {
			playing, err := g.eng.IsEventPlaying(demoEventPath)
			query("IsEventPlaying", playing, err)
		},
		func(g *game) {
			count, err := g.eng.EventInstanceCount(demoEventPath)
			query("EventInstanceCount", count, err)
		},
		func(g *game) {
			call(`SetGlobalParameter("Area", 70)`, g.eng.SetGlobalParameter("Area", 70))
		},
		func(g *game) {
			err := g.eng.SetListenerPositionVelocity(
				studiobridge.Vec2{X: 15, Y: 15},
				studiobridge.Vec2{X: 5, Y: 5},
			)
			call("SetListenerPositionVelocity((15, 15), (5, 5))", err)
		},
		func(g *game) {
			fmt.Printf("- ListenerPosition() -> %+v\n", g.eng.ListenerPosition())
			fmt.Printf("- ListenerVelocity() -> %+v\n", g.eng.ListenerVelocity())
		},
		func(g *game) { call("SetPitch(1.5)", g.current.SetPitch(1.5)) },
		func(g *game) {
			pitch, err := g.current.Pitch()
			query("Pitch", pitch, err)
			final, err := g.current.FinalPitch()
			query("FinalPitch", final, err)
		},
		func(g *game) { call("SetPitch(1)", g.current.SetPitch(1)) },
		func(g *game) { call("SetVolume(0.25)", g.current.SetVolume(0.25)) },
		func(g *game) {
			volume, err := g.current.Volume()
			query("Volume", volume, err)
			final, err := g.current.FinalVolume()
			query("FinalVolume", final, err)
		},
		func(g *game) { call("SetVolume(1)", g.current.SetVolume(1)) },
		func(g *game) { call("Pause()", g.current.Pause()) },
		func(g *game) {
			paused, err := g.current.IsPaused()
			query("IsPaused", paused, err)
		},
		func(g *game) { call("Unpause()", g.current.Unpause()) },
		func(g *game) { call("SetTimelinePosition(5000)", g.current.SetTimelinePosition(5000)) },
		func(g *game) {
			position, err := g.current.TimelinePosition()
			query("TimelinePosition", position, err)
		},
		func(g *game) {
			virtual, err := g.current.IsVirtual()
			query("IsVirtual", virtual, err)
		},
		func(g *game) { call("Stop()", g.current.Stop()) },
		func(g *game) {
			state, err := g.current.PlaybackState()
			query("PlaybackState", state, err)
		},
		func(g *game) { call("Start()", g.current.Start()) },
		func(g *game) {
			call("SetProperty(schedule_delay, 1)", g.current.SetProperty(fmod.PropertyScheduleDelay, 1))
		},
		func(g *game) {
			value, err := g.current.Property(fmod.PropertyScheduleDelay)
			query("Property(schedule_delay)", value, err)
		},
		func(g *game) {
			call(`SetParameterByName("Area", 70, false)`, g.current.SetParameterByName("Area", 70, false))
		},
		func(g *game) {
			value, err := g.current.ParameterByName("Area")
			query(`ParameterByName("Area")`, value, err)
			final, err := g.current.FinalParameterByName("Area")
			query(`FinalParameterByName("Area")`, final, err)
		},
		func(g *game) {
			err := g.current.SetPositionVelocity(
				studiobridge.Vec2{X: 2, Y: 2},
				studiobridge.Vec2{X: 4, Y: 4},
			)
			call("SetPositionVelocity((2, 2), (4, 4))", err)
		},
		func(g *game) {
			pv, err := g.current.PositionVelocity()
			query("PositionVelocity", pv, err)
		},
		func(g *game) { call("MarkForRelease()", g.current.MarkForRelease()) },
		func(g *game) { call("StopImmediately()", g.current.StopImmediately()) },
	}
}

func runScript(eng *engine.Engine) error {
	g := &game{eng: eng}
	script := steps()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	next := 0
	for tick := 0; ; tick++ {
		if tick > 0 && tick%ticksPerStep == 0 {
			if next == len(script) {
				fmt.Println("- UnloadAll()")
				eng.UnloadAll()
				return nil
			}
			script[next](g)
			next++
		}

		if err := eng.Update(); err != nil {
			return err
		}
		<-ticker.C
	}
}
