package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tenpair/internal/engine"
	"github.com/vovakirdan/tui-tenpair/internal/storage"
)

// LocalSessionSlot is the resume slot used by the local CLI.
const LocalSessionSlot = "current"

// Model is the Bubble Tea model for a running game session.
type Model struct {
	session   *engine.Session
	store     *storage.Store
	slot      string
	keys      GameKeyMap
	help      help.Model
	watch     stopwatch.Model
	cursor    int
	erasing   bool
	status    string
	finalized bool
	quitting  bool
	width     int
	height    int
}

// NewModel creates a game model for the given session. The store may be
// nil; results and resume state are then not persisted. slot names the
// resume slot this session saves to on quit.
func NewModel(session *engine.Session, store *storage.Store, slot string) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session: session,
		store:   store,
		slot:    slot,
		keys:    DefaultGameKeyMap(),
		help:    h,
		watch:   stopwatch.NewWithInterval(time.Second),
	}
}

// Init starts the elapsed-time stopwatch.
func (m Model) Init() tea.Cmd {
	return m.watch.Init()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.watch, cmd = m.watch.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.persistOnQuit()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		return m.restart()

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-m.session.Board().Cols()), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(m.session.Board().Cols()), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1), nil

	case key.Matches(msg, m.keys.Select):
		m.applySelect()
	case key.Matches(msg, m.keys.AddNumbers):
		m.applyTool(engine.ToolAddNumbers)
	case key.Matches(msg, m.keys.Shuffle):
		m.applyTool(engine.ToolShuffle)
	case key.Matches(msg, m.keys.Eraser):
		m.erasing = !m.erasing
		if m.erasing {
			m.status = "eraser armed: select a cell to clear, e to cancel"
		} else {
			m.status = ""
		}
		return m, nil
	case key.Matches(msg, m.keys.Undo):
		out := m.session.Undo()
		if out.Applied {
			m.status = "undid last move"
		} else {
			m.status = failureMessage(out.Failure)
		}
		return m, nil
	}

	if m.session.Finished() && !m.finalized {
		cmd := m.finalize()
		return m, cmd
	}
	return m, nil
}

// moveCursor shifts the cursor by delta, clamped to the board.
func (m Model) moveCursor(delta int) Model {
	next := m.cursor + delta
	if next >= 0 && next < m.session.Board().Len() {
		m.cursor = next
	}
	return m
}

// applySelect either erases the cell under the cursor or selects it for
// pair matching, depending on eraser mode.
func (m *Model) applySelect() {
	if m.erasing {
		out := m.session.UseTool(engine.ToolEraser, m.cursor)
		m.erasing = false
		switch {
		case out.Applied:
			m.status = "cell erased"
		case out.Failure == engine.FailureNone:
			m.status = "nothing to erase"
		default:
			m.status = failureMessage(out.Failure)
		}
		return
	}

	out := m.session.SelectCell(m.cursor)
	switch out.Kind {
	case engine.SelectionMatched:
		m.status = fmt.Sprintf("matched for %d", out.Gained)
	case engine.SelectionRejected:
		m.status = failureMessage(out.Failure)
	case engine.SelectionRemoved:
		m.status = "selection cleared"
	default:
		m.status = ""
	}
}

// applyTool invokes a board-wide tool.
func (m *Model) applyTool(tool engine.Tool) {
	out := m.session.UseTool(tool, 0)
	switch {
	case out.Applied && tool == engine.ToolAddNumbers:
		m.status = fmt.Sprintf("added %d numbers", out.Added)
	case out.Applied:
		m.status = "board shuffled"
	default:
		m.status = failureMessage(out.Failure)
	}
}

// restart begins a fresh session in the same mode with the same rules.
func (m Model) restart() (tea.Model, tea.Cmd) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session, err := engine.NewSession(m.session.Mode(), m.session.Rules(), rng)
	if err != nil {
		m.status = fmt.Sprintf("cannot restart: %v", err)
		return m, nil
	}

	m.session = session
	m.cursor = 0
	m.erasing = false
	m.status = ""
	m.finalized = false
	return m, tea.Batch(m.watch.Reset(), m.watch.Start())
}

// finalize records the finished session and drops the resume slot.
func (m *Model) finalize() tea.Cmd {
	m.finalized = true
	m.erasing = false

	if m.store != nil {
		rec := m.session.ResultRecord(m.watch.Elapsed(), time.Now())
		//nolint:errcheck // Best-effort save, game over screen shows regardless
		m.store.SaveResult(storage.ResultEntry{
			Mode:       string(rec.Mode),
			Score:      rec.Score,
			Result:     string(rec.Result),
			Moves:      rec.Moves,
			Duration:   int(rec.Elapsed.Seconds()),
			FinishedAt: rec.FinishedAt,
		})
		//nolint:errcheck // Stale resume state is harmless
		m.store.DeleteSession(m.slot)
	}

	return m.watch.Stop()
}

// persistOnQuit saves the in-progress session for later resume.
func (m *Model) persistOnQuit() {
	if m.store == nil || m.session.Finished() {
		return
	}

	data, err := yaml.Marshal(m.session.Serialize())
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save on the way out
	m.store.SaveSession(m.slot, data)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("TEN PAIR"))
	b.WriteString(hudStyle.Render(fmt.Sprintf("  [%s]", m.session.Mode())))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.session, m.cursor, m.erasing))
	b.WriteString("\n")

	if m.session.Finished() {
		b.WriteString(renderGameOver(m.session, m.watch.Elapsed()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(renderHUD(m.session, m.watch.Elapsed()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// failureMessage maps a rule rejection to a status-line message.
func failureMessage(f engine.Failure) string {
	switch f {
	case engine.FailureInvalidPair:
		return "cells do not match or connect"
	case engine.FailureToolExhausted:
		return "tool used up"
	case engine.FailureGridOverflow:
		return "board is full"
	case engine.FailureNothingToUndo:
		return "nothing to undo"
	case engine.FailureSessionFinished:
		return "game is over"
	default:
		return ""
	}
}

// Run starts the Bubble Tea program with the given session.
func Run(session *engine.Session, store *storage.Store, slot string) error {
	p := tea.NewProgram(
		NewModel(session, store, slot),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
