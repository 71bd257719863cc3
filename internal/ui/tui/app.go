// Package tui is the interactive wizard: pick a material, configuration,
// spacing, and layer count step by step, then read the break estimate.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexshd/tameshiwari"
	"github.com/alexshd/tameshiwari/internal/render"
)

type step int

const (
	stepMode step = iota
	stepMaterial
	stepConfig
	stepSpacing
	stepSpacingCustom
	stepLayers
)

type choice struct {
	title string
	desc  string
}

func (c choice) Title() string       { return c.title }
func (c choice) Description() string { return c.desc }
func (c choice) FilterValue() string { return c.title }

type model struct {
	theme Theme
	calc  tameshiwari.Calculator

	step  step
	menu  list.Model
	input textinput.Model

	width  int
	height int

	matrixMode bool
	material   string
	cfg        tameshiwari.Config

	errMsg string
	output string // final render, printed after the program exits
	done   bool
}

// Run starts the wizard and prints the resulting estimate when it finishes.
func Run(calc tameshiwari.Calculator) error {
	p := tea.NewProgram(newModel(calc), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.output != "" {
		fmt.Println(m.output)
	}
	return nil
}

func newModel(calc tameshiwari.Calculator) model {
	m := model{
		theme: DefaultTheme(),
		calc:  calc,
		step:  stepMode,
	}
	m.menu = newMenu("Tameshiwari", modeChoices())
	m.input = textinput.New()
	return m
}

func newMenu(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

func modeChoices() []list.Item {
	return []list.Item{
		choice{"Single calculation", "One material, one layer count"},
		choice{"Matrix", "Sweep 1-10 layers"},
	}
}

func (m model) materialChoices() []list.Item {
	items := make([]list.Item, 0, m.calc.Catalog.Len())
	for _, mat := range m.calc.Catalog.Materials() {
		items = append(items, choice{
			mat.Name,
			fmt.Sprintf("F1 %.0f lbf, %.2f kg, %s", mat.SingleLayerForce, mat.Mass, mat.Class),
		})
	}
	return items
}

func configChoices() []list.Item {
	return []list.Item{
		choice{"unpegged", "Layers stacked with no spacing"},
		choice{"pegged", "Layers separated by spacers"},
	}
}

func spacingChoices() []list.Item {
	return []list.Item{
		choice{"penny", fmt.Sprintf("%.2f mm (default)", tameshiwari.SpacingPennyMM)},
		choice{"pencil", fmt.Sprintf("%.2f mm carpenter pencil", tameshiwari.SpacingPencilMM)},
		choice{"custom", "Enter spacing in mm"},
	}
}

func (m model) Init() tea.Cmd { return nil }

// resizeMenu applies the last known window size; a zero size means no
// WindowSizeMsg has arrived yet and the list keeps its defaults.
func (m *model) resizeMenu() {
	if m.width > 0 && m.height > 0 {
		m.menu.SetSize(m.width-4, m.height-4)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeMenu()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.step == stepSpacingCustom || m.step == stepLayers {
				if msg.String() == "q" {
					break // "q" is valid text input here
				}
			}
			return m, tea.Quit
		case "enter":
			return m.advance()
		}
	}

	var cmd tea.Cmd
	if m.step == stepSpacingCustom || m.step == stepLayers {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

// advance handles the enter key on the current step.
func (m model) advance() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case stepMode:
		sel, ok := m.menu.SelectedItem().(choice)
		if !ok {
			return m, nil
		}
		m.matrixMode = sel.title == "Matrix"
		m.step = stepMaterial
		m.menu = newMenu("Material", m.materialChoices())
		m.resizeMenu()
		return m, nil

	case stepMaterial:
		sel, ok := m.menu.SelectedItem().(choice)
		if !ok {
			return m, nil
		}
		m.material = sel.title
		m.step = stepConfig
		m.menu = newMenu("Configuration", configChoices())
		m.resizeMenu()
		return m, nil

	case stepConfig:
		sel, ok := m.menu.SelectedItem().(choice)
		if !ok {
			return m, nil
		}
		if sel.title == "pegged" {
			m.step = stepSpacing
			m.menu = newMenu("Spacing", spacingChoices())
			m.resizeMenu()
			return m, nil
		}
		m.cfg = tameshiwari.Unpegged()
		return m.afterConfig()

	case stepSpacing:
		sel, ok := m.menu.SelectedItem().(choice)
		if !ok {
			return m, nil
		}
		switch sel.title {
		case "penny":
			m.cfg = tameshiwari.Pegged(tameshiwari.SpacingPennyMM)
		case "pencil":
			m.cfg = tameshiwari.Pegged(tameshiwari.SpacingPencilMM)
		default:
			m.step = stepSpacingCustom
			m.input = textinput.New()
			m.input.Placeholder = "spacing in mm"
			m.input.Focus()
			return m, textinput.Blink
		}
		return m.afterConfig()

	case stepSpacingCustom:
		spacing, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
		if err != nil || spacing < 0 {
			m.errMsg = "enter a non-negative number in mm"
			return m, nil
		}
		m.cfg = tameshiwari.Pegged(spacing)
		return m.afterConfig()

	case stepLayers:
		layers, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil || layers < 1 {
			m.errMsg = "enter a whole number ≥ 1"
			return m, nil
		}
		return m.finish(layers)
	}

	return m, nil
}

// afterConfig routes to the layer prompt, or straight to the matrix result.
func (m model) afterConfig() (tea.Model, tea.Cmd) {
	if m.matrixMode {
		return m.finish(0)
	}
	m.step = stepLayers
	m.input = textinput.New()
	m.input.Placeholder = "layers (1-10)"
	m.input.Focus()
	return m, textinput.Blink
}

func (m model) finish(layers int) (tea.Model, tea.Cmd) {
	th := render.DefaultTheme()

	if m.matrixMode {
		results, err := m.calc.EvaluateMatrix(m.material, 1, tameshiwari.LayerAccuracyLimit, m.cfg)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.output = th.Matrix(m.material, m.cfg, results)
	} else {
		res, err := m.calc.Evaluate(m.material, layers, m.cfg)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.output = th.Result(res, m.cfg)
	}

	m.done = true
	return m, tea.Quit
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	switch m.step {
	case stepSpacingCustom:
		b.WriteString(m.theme.Title.Render("Custom spacing"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	case stepLayers:
		b.WriteString(m.theme.Title.Render(fmt.Sprintf("Layers of %s", m.material)))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	default:
		b.WriteString(m.menu.View())
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Error.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("enter select · esc quit"))

	return m.theme.Card.Render(b.String())
}
