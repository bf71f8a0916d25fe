package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opendeck-tools/opendeck-cfg/internal/buttoncfg"
	"github.com/opendeck-tools/opendeck-cfg/internal/logging"
)

// Form field indexes
const (
	fieldOutput = iota
	fieldButton
	fieldChannel
	fieldBank
	fieldProgram
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Output file (.syx)",
	"Button index (0-16383)",
	"MIDI channel (1-16)",
	"Bank (0-16383)",
	"Program (0-127)",
}

// FormModel is the single-screen wizard form.
type FormModel struct {
	inputs [fieldCount]textinput.Model
	focus  int

	// Result state
	err     error
	done    bool
	written int
	cfg     *buttoncfg.ButtonConfig
	outPath string

	Width  int
	Height int
}

// NewFormModel creates the wizard form. defaultDir, when non-empty, is
// prepended to the suggested output file name.
func NewFormModel(defaultDir string) FormModel {
	var m FormModel

	for i := 0; i < fieldCount; i++ {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 64
		m.inputs[i] = in
	}

	m.inputs[fieldOutput].Placeholder = filepath.Join(defaultDir, "button.syx")
	m.inputs[fieldButton].Placeholder = "0"
	m.inputs[fieldChannel].Placeholder = "1"
	m.inputs[fieldBank].Placeholder = "0"
	m.inputs[fieldProgram].Placeholder = "0"

	m.inputs[fieldOutput].Focus()
	return m
}

// Init implements tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "q":
			// Plain q only quits once the form is done; while editing it is
			// regular input.
			if m.done {
				return m, tea.Quit
			}

		case "tab", "down":
			if !m.done {
				return m.setFocus(m.focus + 1)
			}

		case "shift+tab", "up":
			if !m.done {
				return m.setFocus(m.focus - 1)
			}

		case "enter":
			if m.done {
				return m, tea.Quit
			}
			if m.focus < fieldCount-1 {
				return m.setFocus(m.focus + 1)
			}
			m.submit()
			return m, nil
		}
	}

	if m.done {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus to the given field, wrapping around.
func (m FormModel) setFocus(target int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (target + fieldCount) % fieldCount
	return m, m.inputs[m.focus].Focus()
}

// submit parses and validates the form, then encodes and writes the file.
func (m *FormModel) submit() {
	m.err = nil

	outPath := strings.TrimSpace(m.inputs[fieldOutput].Value())
	if outPath == "" {
		outPath = m.inputs[fieldOutput].Placeholder
	}
	if outPath == "" {
		m.err = errors.New("output file is required")
		return
	}

	values := [fieldCount]int{}
	for i := fieldButton; i < fieldCount; i++ {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			raw = m.inputs[i].Placeholder
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			m.err = fmt.Errorf("%s: not a number: %q", fieldLabels[i], raw)
			return
		}
		values[i] = v
	}

	cfg := buttoncfg.NewButtonConfig(
		values[fieldButton],
		values[fieldChannel],
		values[fieldBank],
		values[fieldProgram],
	)

	if errs := buttoncfg.ValidateConfig(cfg); len(errs) > 0 {
		m.err = errors.New(buttoncfg.FormatValidationErrors(errs))
		return
	}

	data := buttoncfg.Encode(cfg)
	if err := buttoncfg.WriteFile(outPath, data); err != nil {
		m.err = err
		return
	}

	logging.Info("wizard wrote configuration file")
	m.cfg = cfg
	m.outPath = outPath
	m.written = len(data)
	m.done = true
}

// View implements tea.Model.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s %s", GitHubURL, AppVersion())))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(SuccessBoxStyle.Render(m.successContent()))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("enter/q: exit"))
		b.WriteString("\n")
		return b.String()
	}

	for i := 0; i < fieldCount; i++ {
		label := LabelStyle
		if i == m.focus {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("tab/↑↓: move between fields • enter: next/generate • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// successContent builds the post-write result text.
func (m FormModel) successContent() string {
	var b strings.Builder

	b.WriteString("✓ Configuration file written\n\n")
	b.WriteString(m.cfg.FormatDetailed())
	b.WriteString("\n")
	b.WriteString(m.cfg.Summary(m.outPath, m.written))

	return b.String()
}

// Run launches the wizard and blocks until the user exits.
func Run(defaultDir string) error {
	p := tea.NewProgram(NewFormModel(defaultDir))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
