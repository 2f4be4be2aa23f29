package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	studiobridge "github.com/audioforge/studio-bridge"
	"github.com/audioforge/studio-bridge/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateParamInput
)

const (
	frameInterval = time.Second / 60
	listenerStep  = float32(1)
	pitchStep     = float32(0.1)
	volumeStep    = float32(0.05)
)

type interactiveModel struct {
	eng     *engine.Engine
	events  []string
	current *engine.EventInstance

	selected int
	muted    bool
	pitch    float32
	volume   float32
	state    modelState
	param    textinput.Model

	status  string
	lastErr error
}

type tickMsg time.Time

func newInteractiveModel(eng *engine.Engine) *interactiveModel {
	param := textinput.New()
	param.Placeholder = "Name=Value"
	param.Prompt = "parameter: "
	param.Width = 40

	return &interactiveModel{
		eng:    eng,
		events: eng.EventNames(),
		pitch:  1,
		volume: 1,
		param:  param,
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *interactiveModel) Init() tea.Cmd {
	return frameTick()
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.lastErr = m.eng.Update()
		m.refreshStatus()
		return m, frameTick()

	case tea.KeyMsg:
		if m.state == stateParamInput {
			return m.updateParamInput(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *interactiveModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.eng.UnloadAll()
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.events)-1 {
			m.selected++
		}

	case "enter":
		if len(m.events) == 0 {
			break
		}
		inst, err := m.eng.PlayEvent(m.events[m.selected])
		if err != nil {
			m.lastErr = err
			break
		}
		m.current = inst
		m.pitch = 1
		m.volume = 1

	case "s":
		if m.current != nil {
			m.lastErr = m.current.Stop()
		}

	case "S":
		if m.current != nil {
			m.lastErr = m.current.StopImmediately()
		}

	case " ":
		m.togglePause()

	case "+", "=":
		m.nudgePitch(pitchStep)

	case "-":
		m.nudgePitch(-pitchStep)

	case "]":
		m.nudgeVolume(volumeStep)

	case "[":
		m.nudgeVolume(-volumeStep)

	case "m":
		if err := m.eng.SetGlobalMute(!m.muted); err != nil {
			m.lastErr = err
			break
		}
		m.muted = !m.muted

	case "w":
		m.moveListener(0, listenerStep)
	case "a":
		m.moveListener(-listenerStep, 0)
	case "d":
		m.moveListener(listenerStep, 0)
	case "x":
		m.moveListener(0, -listenerStep)

	case "p":
		if m.current != nil {
			m.state = stateParamInput
			m.param.SetValue("")
			m.param.Focus()
		}
	}

	return m, nil
}

func (m *interactiveModel) updateParamInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.applyParameter(m.param.Value())
		m.state = stateBrowse
		m.param.Blur()
		return m, nil

	case "esc":
		m.state = stateBrowse
		m.param.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.param, cmd = m.param.Update(msg)
	return m, cmd
}

func (m *interactiveModel) togglePause() {
	if m.current == nil {
		return
	}
	paused, err := m.current.IsPaused()
	if err != nil {
		m.lastErr = err
		return
	}
	if paused {
		m.lastErr = m.current.Unpause()
	} else {
		m.lastErr = m.current.Pause()
	}
}

func (m *interactiveModel) nudgePitch(delta float32) {
	if m.current == nil {
		return
	}
	next := m.pitch + delta
	if next < 0 {
		next = 0
	}
	if err := m.current.SetPitch(next); err != nil {
		m.lastErr = err
		return
	}
	m.pitch = next
}

func (m *interactiveModel) nudgeVolume(delta float32) {
	if m.current == nil {
		return
	}
	next := m.volume + delta
	if next < 0 {
		next = 0
	}
	if err := m.current.SetVolume(next); err != nil {
		m.lastErr = err
		return
	}
	m.volume = next
}

func (m *interactiveModel) moveListener(dx, dy float32) {
	pos := m.eng.ListenerPosition()
	m.lastErr = m.eng.SetListenerPosition(studiobridge.Vec2{X: pos.X + dx, Y: pos.Y + dy})
}

func (m *interactiveModel) applyParameter(entry string) {
	// The per-frame tick keeps running during parameter entry, and the
	// middleware may reclaim the instance under us.
	if m.current == nil {
		m.lastErr = fmt.Errorf("instance stopped before the parameter was applied")
		return
	}

	name, value, ok := strings.Cut(entry, "=")
	if !ok {
		m.lastErr = fmt.Errorf("parameter entry must be Name=Value")
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil {
		m.lastErr = fmt.Errorf("parse parameter value: %w", err)
		return
	}
	m.lastErr = m.current.SetParameterByName(strings.TrimSpace(name), float32(v), false)
}

func (m *interactiveModel) refreshStatus() {
	if m.current == nil {
		m.status = "no instance"
		return
	}

	state, err := m.current.PlaybackState()
	if err != nil {
		// The instance was reclaimed by the middleware after release.
		m.current = nil
		m.status = "no instance"
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "state %s", state)
	if paused, err := m.current.IsPaused(); err == nil && paused {
		b.WriteString(" (paused)")
	}
	if final, err := m.current.FinalPitch(); err == nil {
		fmt.Fprintf(&b, " • pitch %.2f/%.2f", m.pitch, final)
	}
	if final, err := m.current.FinalVolume(); err == nil {
		fmt.Fprintf(&b, " • volume %.2f/%.2f", m.volume, final)
	}
	m.status = b.String()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Studio Bridge"))
	if m.muted {
		b.WriteString(" ")
		b.WriteString(errorStyle.Render("[muted]"))
	}
	b.WriteString("\n\n")

	if len(m.events) == 0 {
		b.WriteString("No events loaded.\n")
	}
	for i, name := range m.events {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
			b.WriteString(selectedStyle.Render(cursor + name))
		} else {
			b.WriteString(cursor + eventStyle.Render(name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	pos := m.eng.ListenerPosition()
	b.WriteString(statusStyle.Render(fmt.Sprintf("listener (%.0f, %.0f) • %s", pos.X, pos.Y, m.status)))
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.lastErr)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.state == stateParamInput {
		b.WriteString(m.param.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc back"))
		return b.String()
	}

	b.WriteString(helpStyle.Render(
		"↑/↓ select • enter play • s stop • S stop now • space pause • +/- pitch • [/] volume\n" +
			"m mute • wadx listener • p parameter • q quit"))
	return b.String()
}

func runInteractive(eng *engine.Engine) error {
	p := tea.NewProgram(newInteractiveModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
