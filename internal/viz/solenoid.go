package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Vihaan2509/Simulations/internal/field"
)

const (
	coilSegsPerTurn = 16
	linePointBudget = 400
)

// SolenoidModel is the interactive field-line display. The geometry is
// static; it is retraced only when a coil parameter changes.
type SolenoidModel struct {
	sol      *field.Solenoid
	lines    int
	canvas   *Canvas
	camera   *Camera
	geometry *Wireframe
	showHelp bool
}

func NewSolenoidModel(sol *field.Solenoid, lines int) SolenoidModel {
	if lines <= 0 {
		lines = 8
	}

	cam := NewCamera()
	cam.Zoom = 1.2 / sol.Length
	cam.RotX = -1.2

	m := SolenoidModel{
		sol:    sol,
		lines:  lines,
		canvas: NewCanvas(canvasWidth, canvasHeight),
		camera: cam,
	}
	m.retrace()
	return m
}

func (m *SolenoidModel) retrace() {
	w := NewWireframe()
	w.AddPolyline(m.sol.Coil(coilSegsPerTurn))
	for _, line := range m.sol.FieldLines(m.lines, linePointBudget) {
		w.AddPolyline(line)
	}
	m.geometry = w
}

func (m SolenoidModel) Init() tea.Cmd { return nil }

func (m SolenoidModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
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
		case "l":
			m.lines++
			m.retrace()
		case "L":
			if m.lines > 1 {
				m.lines--
				m.retrace()
			}
		case "n":
			m.sol.Turns++
			m.retrace()
		case "N":
			if m.sol.Turns > 1 {
				m.sol.Turns--
				m.retrace()
			}
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m SolenoidModel) View() string {
	m.canvas.Clear()
	Render(m.canvas, m.geometry, m.camera)

	theme := CurrentTheme
	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	helpStyle := lipgloss.NewStyle().Foreground(theme.Muted).MarginTop(2)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted).
		Padding(1, 2).
		Width(42)

	var s strings.Builder
	s.WriteString(headerStyle.Render("SOLENOID") + "\n\n")
	s.WriteString(labelStyle.Render("Turns") + valueStyle.Render(fmt.Sprintf("%d", m.sol.Turns)) + "\n")
	s.WriteString(labelStyle.Render("Radius") + valueStyle.Render(fmt.Sprintf("%.1f", m.sol.Radius)) + "\n")
	s.WriteString(labelStyle.Render("Length") + valueStyle.Render(fmt.Sprintf("%.1f", m.sol.Length)) + "\n")
	s.WriteString(labelStyle.Render("Field lines") + valueStyle.Render(fmt.Sprintf("%d", m.lines)) + "\n")
	s.WriteString(helpStyle.Render("\n─────────────────────\nL:Lines N:Turns T:Theme\nXYZ:Rotate +-:Zoom Q:Quit"))

	if m.showHelp {
		s.WriteString(helpStyle.Render("\n\nshift reverses L/N/XYZ"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))
}

// RunSolenoid starts the interactive solenoid view and blocks until the
// user quits.
func RunSolenoid(sol *field.Solenoid, lines int) error {
	p := tea.NewProgram(NewSolenoidModel(sol, lines), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
