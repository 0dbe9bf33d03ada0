// Package editor is the terminal front end of the format bridge.
//
// The Model is a Bubble Tea program: every key press is handled inside Update, so the bridge runs
// on the single event-loop goroutine. Pressing the format key publishes the buffer on the request
// port and applies whatever the bridge put in the result mailbox before Update returns. When
// formatting fails the mailbox stays empty and the buffer is left as it was.
package editor

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/bridge"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/port"
)

var statusStyle = lipgloss.NewStyle().Reverse(true)

type (
	// Params configure a Model.
	Params struct {
		Config   config.Editor
		Path     string
		Content  string
		Requests *port.Requests
		Results  *port.Mailbox
	}

	// Model is the editor state.
	Model struct {
		textarea textarea.Model
		help     help.Model
		keys     KeyMap
		requests *port.Requests
		results  *port.Mailbox
		path     string
		status   string
		width    int
	}

	savedMsg struct{ err error }
)

// New creates a focused editor holding p.Content.
func New(p Params) *Model {
	ta := textarea.New()
	ta.ShowLineNumbers = p.Config.LineNumbers
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "Type SQL here..."
	ta.SetValue(p.Content)
	ta.Focus()

	// The status line is styled as a whole; plain help keeps it measurable for truncation.
	hm := help.New()
	hm.Styles = help.Styles{}

	return &Model{
		textarea: ta,
		help:     hm,
		keys:     DefaultKeyMap(p.Config.FormatKey),
		requests: p.Requests,
		results:  p.Results,
		path:     p.Path,
	}
}

// Value returns the current buffer.
func (m *Model) Value() string {
	return m.textarea.Value()
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Format):
			m.format()
			return m, nil
		case key.Matches(msg, m.keys.Save):
			if m.path == "" {
				return m, nil
			}
			m.status = "saving..."
			return m, save(m.path, m.textarea.Value())
		}
	case savedMsg:
		m.status = "saved"
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textarea.SetWidth(msg.Width)
		m.textarea.SetHeight(max(msg.Height-1, 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.textarea.View() + "\n" + m.statusLine()
}

// format hands the buffer to the bridge and applies the results it produced, in order.
func (m *Model) format() {
	m.requests.Publish(bridge.Request{Source: m.textarea.Value()})

	for _, res := range m.results.Drain() {
		m.textarea.SetValue(res.Formatted)
	}
}

func (m *Model) statusLine() string {
	name := "[scratch]"
	if m.path != "" {
		name = filepath.Base(m.path)
	}

	line := name
	if m.status != "" {
		line += " (" + m.status + ")"
	}
	line += "  " + m.help.View(m.keys)

	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "…")
	}

	return statusStyle.Render(line)
}

func save(path, content string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(content), consts.ModeFile)
		return savedMsg{err: errors.Wrapf(err, "failed to write file: %s", path)}
	}
}
