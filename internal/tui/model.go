package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/list-manager/internal/model"
	"github.com/ytget/list-manager/internal/store"
)

// DefaultNoticeDuration is how long a notice stays on screen
const DefaultNoticeDuration = 1500 * time.Millisecond

const (
	title       = "List Manager"
	placeholder = "Enter item"
	emptyText   = "No items yet."
)

type row struct {
	label    string
	onRemove store.RemoveFunc
}

type noticeExpiredMsg struct {
	id string
	at time.Time
}

// inputFocus lets the store empty and refocus the text input
type inputFocus struct {
	input *textinput.Model
}

func (f inputFocus) Clear() {
	f.input.Reset()
}

func (f inputFocus) Focus() {
	f.input.Focus()
}

// Model is the terminal frontend. It is the store's Renderer and Notifier,
// so every state change the store makes lands here before View runs.
type Model struct {
	store *store.ListStore

	rows   []row
	cursor int

	input textinput.Model
	keys  keyMap
	help  help.Model

	notice  *model.Notice
	pending bool
	ttl     time.Duration

	err error
}

// NewModel creates the model and its store. ttl is how long notices stay
// visible; zero means DefaultNoticeDuration.
func NewModel(ttl time.Duration) (*Model, error) {
	if ttl <= 0 {
		ttl = DefaultNoticeDuration
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = model.MaxItemLength
	ti.Width = model.MaxItemLength + 2
	ti.Focus()

	m := &Model{
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
		ttl:   ttl,
	}

	s, err := store.New(m, m)
	if err != nil {
		return nil, fmt.Errorf("create terminal model: %w", err)
	}
	m.store = s
	return m, nil
}

// Run starts the program and blocks until the user quits or ctx ends
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// Store returns the list store driven by this model
func (m *Model) Store() *store.ListStore {
	return m.store
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleExpiry())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case noticeExpiredMsg:
		if m.notice != nil && m.notice.ID == msg.id && m.notice.Expired(msg.at, m.ttl) {
			m.notice = nil
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.store.AddItem(m.input.Value(), inputFocus{input: &m.input})
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Remove):
		m.removeSelected()
	case key.Matches(msg, m.keys.Clear):
		m.store.Clear()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return m.scheduleExpiry()
}

// removeSelected runs the control bound to the row under the cursor
func (m *Model) removeSelected() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	if r.onRemove == nil {
		return
	}
	if err := r.onRemove(); err != nil {
		log.Printf("Model: remove %q failed: %v", r.label, err)
		m.err = err
		return
	}
	m.err = nil
}

func (m *Model) scheduleExpiry() tea.Cmd {
	if !m.pending || m.notice == nil {
		return nil
	}
	m.pending = false
	id := m.notice.ID
	return tea.Tick(m.ttl, func(at time.Time) tea.Msg {
		return noticeExpiredMsg{id: id, at: at}
	})
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(emptyStyle.Render(emptyText))
		b.WriteString("\n")
	}
	for i, r := range m.rows {
		line := fmt.Sprintf("%2d. %s", i+1, r.label)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.notice != nil {
		b.WriteString("\n")
		b.WriteString(noticeStyle(m.notice.Severity).Render(m.notice.Message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Rows returns the labels in display order
func (m *Model) Rows() []string {
	labels := make([]string, len(m.rows))
	for i, r := range m.rows {
		labels[i] = r.label
	}
	return labels
}

// Cursor returns the selected row index
func (m *Model) Cursor() int {
	return m.cursor
}

// Notice returns the notice on screen, or nil
func (m *Model) Notice() *model.Notice {
	return m.notice
}

// RenderEmpty implements store.Renderer
func (m *Model) RenderEmpty() error {
	m.rows = nil
	m.cursor = 0
	return nil
}

// AppendRow implements store.Renderer
func (m *Model) AppendRow(label string, index int, onRemove store.RemoveFunc) {
	if index != len(m.rows) {
		log.Printf("Model: row %d appended at position %d", index, len(m.rows))
	}
	m.rows = append(m.rows, row{label: label, onRemove: onRemove})
}

// RemoveRow implements store.Renderer
func (m *Model) RemoveRow(index int) {
	if index < 0 || index >= len(m.rows) {
		return
	}
	m.rows = append(m.rows[:index], m.rows[index+1:]...)
	if m.cursor >= len(m.rows) && m.cursor > 0 {
		m.cursor = len(m.rows) - 1
	}
}

// RebindRow implements store.Renderer
func (m *Model) RebindRow(index int, onRemove store.RemoveFunc) {
	if index < 0 || index >= len(m.rows) {
		return
	}
	m.rows[index].onRemove = onRemove
}

// ClearRows implements store.Renderer
func (m *Model) ClearRows() {
	m.rows = nil
	m.cursor = 0
}

// Notify implements store.Notifier
func (m *Model) Notify(message string, severity model.Severity) {
	m.notice = model.NewNotice(message, severity)
	m.pending = true
}
