package compose

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/app"
	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/infra/editor"
	"github.com/CrestNiraj12/ideaboard/tui/common"
)

// --- Fields ---

type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldAuthor
	fieldLink
	fieldTags
	fieldCount
)

// --- Messages ---

// DoneMsg is sent when the form should close. Created reports whether an
// idea was posted, in which case the list must be re-read.
type DoneMsg struct {
	Created bool
}

// CreatedMsg is sent after the create write completes.
type CreatedMsg struct {
	Err error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the idea creation form. Field values survive a cancel and are
// cleared only after a successful post.
type Model struct {
	ideas       app.IdeaService
	editor      *editor.EnvEditor
	log         *zap.Logger
	keys        common.KeyMap
	title       textinput.Model
	description textarea.Model
	author      textinput.Model
	link        textinput.Model
	tags        textinput.Model
	focus       field
	width       int
}

// New creates the form with injected dependencies. ed may be nil, which
// disables the external editor.
func New(ideas app.IdeaService, ed *editor.EnvEditor, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "Describe your idea..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(64)
	ta.SetHeight(5)
	ta.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ideas:       ideas,
		editor:      ed,
		log:         log.Named("compose"),
		keys:        common.DefaultKeyMap(),
		title:       newInput("Idea title"),
		description: ta,
		author:      newInput("Your name (optional)"),
		link:        newInput("Link (optional)"),
		tags:        newInput("Tags (comma separated)"),
	}
	m.setFocus(fieldTitle)
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init has nothing to start; the form is static until keys arrive.
func (m Model) Init() tea.Cmd {
	return nil
}

// Draft returns the current raw form values.
func (m Model) Draft() domain.IdeaDraft {
	return domain.IdeaDraft{
		Title:       m.title.Value(),
		Description: m.description.Value(),
		Author:      m.author.Value(),
		Link:        m.link.Value(),
		Tags:        m.tags.Value(),
	}
}

// SetDraft replaces all field values.
func (m *Model) SetDraft(d domain.IdeaDraft) {
	m.title.SetValue(d.Title)
	m.description.SetValue(d.Description)
	m.author.SetValue(d.Author)
	m.link.SetValue(d.Link)
	m.tags.SetValue(d.Tags)
}

// Reset clears every field and moves focus back to the title.
func (m *Model) Reset() {
	m.SetDraft(domain.IdeaDraft{})
	m.setFocus(fieldTitle)
}

// submit builds the payload and returns the create Cmd. An invalid draft
// sends nothing.
func (m Model) submit() tea.Cmd {
	idea, err := m.Draft().Build()
	if err != nil {
		m.log.Debug("submit ignored", zap.Error(err))
		return nil
	}
	ideas := m.ideas
	return func() tea.Msg {
		return CreatedMsg{Err: ideas.Create(context.Background(), idea)}
	}
}

// launchEditor hands the description to $EDITOR via tea.ExecProcess, which
// suspends raw terminal mode while the editor runs.
func (m Model) launchEditor() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	cmd, tmpPath, err := m.editor.Cmd(m.description.Value())
	if err != nil {
		m.log.Warn("preparing editor", zap.Error(err))
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWidth(msg.Width)
		return m, nil

	case CreatedMsg:
		if msg.Err != nil {
			m.log.Warn("create idea failed", zap.Error(msg.Err))
			return m, nil
		}
		m.Reset()
		return m, done(DoneMsg{Created: true})

	case editorFinishedMsg:
		content, err := m.editor.ReadContent(msg.tmpPath)
		if msg.err != nil {
			m.log.Warn("editor exited with error", zap.Error(msg.err))
			return m, nil
		}
		if err != nil {
			m.log.Warn("reading editor content", zap.Error(err))
			return m, nil
		}
		m.description.SetValue(content)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, done(DoneMsg{})
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.keys.Editor):
		return m, m.launchEditor()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldAuthor:
		m.author, cmd = m.author.Update(msg)
	case fieldLink:
		m.link, cmd = m.link.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f field) {
	m.focus = f
	m.title.Blur()
	m.description.Blur()
	m.author.Blur()
	m.link.Blur()
	m.tags.Blur()

	// Static cursors never return a blink Cmd.
	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldDescription:
		m.description.Focus()
	case fieldAuthor:
		m.author.Focus()
	case fieldLink:
		m.link.Focus()
	case fieldTags:
		m.tags.Focus()
	}
}

func (m *Model) setWidth(w int) {
	m.width = w
	inner := min(max(w-12, 20), 80)
	m.title.Width = inner
	m.author.Width = inner
	m.link.Width = inner
	m.tags.Width = inner
	m.description.SetWidth(inner)
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
