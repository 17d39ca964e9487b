package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"devconsole/internal/config"
	"devconsole/internal/console"
)

// Model is the bubbletea model hosting one console session. Key events are
// translated into the console's Submit/HistoryUp/HistoryDown signals; each
// accepted line is drained through the dispatcher within the same update.
type Model struct {
	console *console.Console

	input    textinput.Model
	viewport viewport.Model
	styles   Styles

	width  int
	height int
	ready  bool
}

// New builds a model around an already-configured console session.
func New(c *console.Console, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.Focus()

	vp := viewport.New(int(cfg.Width), int(cfg.Height))

	m := Model{
		console:  c,
		input:    ti,
		viewport: vp,
		styles:   DefaultStyles(),
	}
	m.input.PromptStyle = m.styles.Prompt
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := m.styles.Frame.GetFrameSize()
		m.viewport.Width = msg.Width - frameW
		m.viewport.Height = msg.Height - frameH - 2
		m.input.Width = msg.Width - frameW - len(m.input.Prompt)
		m.ready = true
		m.refreshScrollback()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			m.console.SetBuffer(m.input.Value())
			m.console.Submit()
			m.console.Tick()
			m.syncFromConsole()
			if m.console.QuitRequested() {
				return m, tea.Quit
			}
			return m, nil

		case tea.KeyUp:
			m.console.SetBuffer(m.input.Value())
			m.console.HistoryUp()
			m.syncFromConsole()
			return m, nil

		case tea.KeyDown:
			m.console.SetBuffer(m.input.Value())
			m.console.HistoryDown()
			m.syncFromConsole()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// syncFromConsole pulls the session's edit buffer and scrollback back into
// the widgets after a state transition.
func (m *Model) syncFromConsole() {
	m.input.SetValue(m.console.Buffer())
	m.input.CursorEnd()
	m.refreshScrollback()
}

func (m *Model) refreshScrollback() {
	content := strings.Join(m.console.Scrollback(), "\n")
	m.viewport.SetContent(m.styles.Scrollback.Render(content))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting console..."
	}
	separator := m.styles.Separator.Render(strings.Repeat("─", max(m.viewport.Width, 1)))
	body := m.viewport.View() + "\n" + separator + "\n" + m.input.View()
	return m.styles.Frame.Render(body)
}

// Run starts the interactive console program and blocks until it exits.
func Run(c *console.Console, cfg *config.Config) error {
	p := tea.NewProgram(New(c, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
