// Package tui is the interactive chat front end: a scrollback viewport
// over the tutor dispatcher with a single input line. Slash commands run
// locally; free text blocks on the hosted model, so dispatch happens off
// the update loop.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/san-kum/phystutor/internal/tutor"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const dispatchTimeout = 90 * time.Second

type replyMsg struct {
	rep tutor.Reply
	err error
}

type promptReloadedMsg struct{}

type model struct {
	tut     *tutor.Tutor
	input   textinput.Model
	view    viewport.Model
	lines   []string
	waiting bool
	ready   bool

	watcher    *fsnotify.Watcher
	promptBase string

	width  int
	height int
}

func newModel(tut *tutor.Tutor, promptPath string) model {
	in := textinput.New()
	in.Placeholder = "ask, or type /help"
	in.Prompt = green.Render("> ")
	in.Focus()

	m := model{
		tut:    tut,
		input:  in,
		width:  80,
		height: 24,
	}

	// Hot-reload notice for the system prompt: watch the prompt's parent
	// directory since editors replace files rather than rewrite them.
	// Watching is best effort; chat works without it.
	if promptPath != "" {
		if w, err := fsnotify.NewWatcher(); err == nil {
			if err := w.Add(filepath.Dir(promptPath)); err == nil {
				m.watcher = w
				m.promptBase = filepath.Base(promptPath)
			} else {
				w.Close()
			}
		}
	}

	m.push(dim.Render("phystutor - type /help for commands, ctrl+c to quit"))
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, watchPrompt(m.watcher, m.promptBase))
	}
	return tea.Batch(cmds...)
}

// watchPrompt blocks on the next relevant filesystem event. The command
// is re-issued after each message so events keep flowing.
func watchPrompt(w *fsnotify.Watcher, base string) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) == base && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return promptReloadedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func dispatch(tut *tutor.Tutor, input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		rep, err := tut.Dispatch(ctx, input)
		return replyMsg{rep: rep, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.input.Reset()
			m.push(cyan.Render("you ") + white.Render(text))
			m.push(dim.Render("…"))
			m.waiting = true
			return m, dispatch(m.tut, text)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vh := msg.Height - 4
		if vh < 3 {
			vh = 3
		}
		if !m.ready {
			m.view = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = vh
		}
		m.input.Width = msg.Width - 4
		m.refresh()
		return m, nil

	case replyMsg:
		m.waiting = false
		m.pop() // the pending "…" line
		if msg.err != nil {
			m.push(yellow.Render("! ") + white.Render(msg.err.Error()))
		} else {
			for _, line := range strings.Split(msg.rep.Text, "\n") {
				m.push(magenta.Render("tutor ") + white.Render(line))
			}
			if msg.rep.Preview != "" {
				for _, line := range strings.Split(msg.rep.Preview, "\n") {
					m.push(dim.Render("  " + line))
				}
			}
			for _, art := range msg.rep.Artifacts {
				m.push(dim.Render("  saved " + art.Path))
			}
		}
		m.refresh()
		return m, nil

	case promptReloadedMsg:
		m.push(dim.Render("system prompt changed on disk; next question uses the new prompt"))
		m.refresh()
		return m, watchPrompt(m.watcher, m.promptBase)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) push(line string) {
	m.lines = append(m.lines, line)
	m.refresh()
}

func (m *model) pop() {
	if len(m.lines) > 0 {
		m.lines = m.lines[:len(m.lines)-1]
	}
}

func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.view.SetContent(strings.Join(m.lines, "\n"))
	m.view.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}

	status := dim.Render("/help for commands")
	if m.waiting {
		status = yellow.Render("thinking…")
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		cyan.Render(" phystutor"),
		m.view.View(),
		m.input.View(),
		status,
	)
}

// Run starts the chat session and blocks until the user quits.
func Run(tut *tutor.Tutor, promptPath string) error {
	_, err := tea.NewProgram(newModel(tut, promptPath), tea.WithAltScreen()).Run()
	return err
}
