package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Vihaan2509/Simulations/internal/field"
	"github.com/Vihaan2509/Simulations/internal/orbit"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var canvasStyle = lipgloss.NewStyle().Padding(1, 2)

type TickMsg time.Time

// Model is the interactive orbit view. One TickMsg advances the simulation
// by a whole number of fixed timesteps; the integrator never sees wall-clock
// time.
type Model[V orbit.Vector[V]] struct {
	sim           *orbit.Simulation[V]
	name          string
	canvas        *Canvas
	camera        *Camera
	well          *field.Well
	showWell      bool
	radiusHist    []float64
	fps           int
	stepsPerFrame int
	showHelp      bool
}

func NewModel[V orbit.Vector[V]](sim *orbit.Simulation[V], name string, fps, stepsPerFrame int, showWell bool) Model[V] {
	if fps <= 0 {
		fps = 60
	}
	if stepsPerFrame <= 0 {
		stepsPerFrame = 1
	}

	cam := NewCamera()
	if r := sim.Radius(); r > 0 {
		cam.Zoom = 1.1 / r
	}
	cam.RotX = -0.9

	return Model[V]{
		sim:           sim,
		name:          name,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		camera:        cam,
		well:          field.NewWell(),
		showWell:      showWell,
		radiusHist:    make([]float64, 0, historyCapacity),
		fps:           fps,
		stepsPerFrame: stepsPerFrame,
	}
}

func (m Model[V]) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model[V]) Init() tea.Cmd {
	m.sim.Start()
	return m.tickCmd()
}

func (m Model[V]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.sim.Status() == orbit.StatusRunning {
				m.sim.Stop()
			} else {
				m.sim.Start()
			}
		case "r":
			m.sim.Reset()
			m.radiusHist = m.radiusHist[:0]
			m.sim.Start()
		case "g":
			m.showWell = !m.showWell
		case "t":
			NextTheme()
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		for i := 0; i < m.stepsPerFrame; i++ {
			if err := m.sim.Tick(); err != nil {
				break
			}
			m.radiusHist = append(m.radiusHist, m.sim.Radius())
			if len(m.radiusHist) > historyCapacity {
				m.radiusHist = m.radiusHist[1:]
			}
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model[V]) draw() {
	m.canvas.Clear()
	w := NewWireframe()

	if m.showWell {
		masses := []field.Mass{
			{Pos: toVec3(m.sim.Central().Pos), M: m.sim.Central().Mass},
			{Pos: toVec3(m.sim.Body().Pos), M: m.sim.Constants().BodyMass},
		}
		for _, line := range m.well.Lines(masses) {
			w.AddPolyline(line)
		}
	}

	trail := m.sim.Trail().Points()
	line := make([]orbit.Vec3, len(trail))
	for i, p := range trail {
		line[i] = toVec3(p)
	}
	w.AddPolyline(line)

	Render(m.canvas, w, m.camera)

	// Masses drawn last so they stay visible over the grid.
	if x, y, _, ok := m.camera.Project(FromOrbit(toVec3(m.sim.Central().Pos)), m.canvas.Width, m.canvas.Height); ok {
		m.canvas.DrawMarker(x, y)
	}
	if x, y, _, ok := m.camera.Project(FromOrbit(toVec3(m.sim.Body().Pos)), m.canvas.Width, m.canvas.Height); ok {
		m.canvas.DrawMarker(x, y)
	}
}

func (m Model[V]) View() string {
	m.draw()

	theme := CurrentTheme
	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	warnStyle := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	graphStyle := lipgloss.NewStyle().Foreground(theme.Primary).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(theme.Muted).MarginTop(2)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted).
		Padding(1, 2).
		Width(42)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")

	switch {
	case errors.Is(m.sim.Err(), orbit.ErrProximity):
		s.WriteString(warnStyle.Render("COLLISION — press r to reset") + "\n\n")
	case m.sim.Status() == orbit.StatusRunning:
		s.WriteString("RUNNING\n\n")
	default:
		s.WriteString("STOPPED\n\n")
	}

	if len(m.radiusHist) > 1 {
		chart := asciigraph.Plot(m.radiusHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Radius"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.sim.Time())) + "\n")
	s.WriteString(labelStyle.Render("Radius") + valueStyle.Render(fmt.Sprintf("%.2f", m.sim.Radius())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f", m.sim.Body().Vel.Norm())) + "\n")
	s.WriteString(labelStyle.Render("Trail") + valueStyle.Render(fmt.Sprintf("%d/%d", m.sim.Trail().Len(), m.sim.Trail().Cap())) + "\n")
	if m.showWell {
		s.WriteString(labelStyle.Render("Well grid") + valueStyle.Render("on") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nG:Grid T:Theme ?:Help\nXYZ:Rotate +-:Zoom"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  G        - Toggle well grid         ║
║  T        - Cycle themes             ║
║  X/Y/Z    - Rotate (shift reverses)  ║
║  + / -    - Zoom in / out            ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

func toVec3[V orbit.Vector[V]](p V) orbit.Vec3 {
	c := p.Components()
	v := orbit.Vec3{X: c[0], Y: c[1]}
	if len(c) > 2 {
		v.Z = c[2]
	}
	return v
}

// RunOrbit starts the interactive orbit view and blocks until the user
// quits.
func RunOrbit[V orbit.Vector[V]](sim *orbit.Simulation[V], name string, fps, stepsPerFrame int, showWell bool) error {
	p := tea.NewProgram(NewModel(sim, name, fps, stepsPerFrame, showWell), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
