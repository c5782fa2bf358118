package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/bullet/internal/config"
	"github.com/studiowebux/bullet/internal/launch"
	"github.com/studiowebux/bullet/internal/session"
)

// Model is the bubbletea state wrapping the session. All matching and
// launch decisions live in the session; the model only owns the text
// input widget and the viewport dimensions.
type Model struct {
	sess   *session.Session
	input  textinput.Model
	width  int
	height int
	status string
}

// New creates the TUI model for a session.
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "type a shortcut..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		sess:   sess,
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Run loads the configuration, builds the session, and drives the TUI
// until quit or a successful launch.
func Run() error {
	cfg, loadErr := config.Load()
	sess := session.New(cfg, loadErr, launch.Run)

	p := tea.NewProgram(New(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - inputChromeWidth
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.sess.Quit()
			return m, tea.Quit
		case "ctrl+y":
			m.copyCandidate()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.status = ""
		m.sess.SetQuery(m.input.Value())
		if !m.sess.Running() {
			return m, tea.Quit
		}
		return m, cmd
	}
	return m, nil
}

// copyCandidate puts the would-be launch target on the clipboard instead
// of opening it.
func (m *Model) copyCandidate() {
	sc, ok := m.sess.Candidate()
	if !ok {
		m.status = "nothing to copy: no unambiguous match"
		return
	}
	target, err := launch.Target(sc)
	if err != nil {
		m.status = err.Error()
		return
	}
	if err := clipboard.WriteAll(target); err != nil {
		m.status = "clipboard unavailable: " + err.Error()
		return
	}
	m.status = "copied " + target
}
