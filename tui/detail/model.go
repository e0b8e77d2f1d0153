package detail

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/app"
	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/tui/common"
)

// --- Messages ---

// UpvoteMsg asks the list to upvote the shown idea.
type UpvoteMsg struct {
	Idea domain.Idea
}

// CloseMsg is sent when the user leaves the detail view.
type CloseMsg struct{}

// sendKey submits the comment form.
var sendKey = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "send"),
)

// --- Model ---

type focusArea int

const (
	focusNone focusArea = iota
	focusContent
	focusAuthor
)

// Model shows one idea from the list snapshot together with its comment
// thread. The idea itself is never re-fetched here.
type Model struct {
	idea     domain.Idea
	comments app.CommentService
	log      *zap.Logger
	keys     common.KeyMap
	thread   []domain.Comment
	content  textinput.Model
	author   textinput.Model
	focus    focusArea
	width    int
	height   int
}

// New creates a detail model for idea.
func New(idea domain.Idea, comments app.CommentService, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		idea:     idea,
		comments: comments,
		log:      log.Named("detail"),
		keys:     common.DefaultKeyMap(),
		content:  newInput("Add a comment..."),
		author:   newInput("Your name (optional)"),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0 // Sent as typed
	ti.Width = 60
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init loads the comment thread.
func (m Model) Init() tea.Cmd {
	return m.fetchThread()
}

// Idea returns the shown idea snapshot.
func (m Model) Idea() domain.Idea {
	return m.idea
}

// Comments returns the loaded thread.
func (m Model) Comments() []domain.Comment {
	return m.thread
}

// Typing reports whether keys go to the comment form.
func (m Model) Typing() bool {
	return m.focus != focusNone
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := min(max(msg.Width-12, 20), 80)
		m.content.Width = inner
		m.author.Width = inner
		return m, nil

	case ThreadLoadedMsg, ThreadErrorMsg, CommentAddedMsg:
		return m.updateThread(msg)

	case tea.KeyMsg:
		if m.focus != focusNone {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }
	case key.Matches(msg, m.keys.Upvote):
		idea := m.idea
		return m, func() tea.Msg { return UpvoteMsg{Idea: idea} }
	case key.Matches(msg, m.keys.Link):
		return m, common.OpenURL(m.idea.Link)
	case key.Matches(msg, m.keys.Comment), key.Matches(msg, m.keys.NextField):
		m.setFocus(focusContent)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.setFocus(focusNone)
		return m, nil
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		if m.focus == focusContent {
			m.setFocus(focusAuthor)
		} else {
			m.setFocus(focusContent)
		}
		return m, nil
	case key.Matches(msg, sendKey, m.keys.Submit):
		return m, m.submit()
	}

	var cmd tea.Cmd
	if m.focus == focusContent {
		m.content, cmd = m.content.Update(msg)
	} else {
		m.author, cmd = m.author.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.content.Blur()
	m.author.Blur()
	switch f {
	case focusContent:
		m.content.Focus()
	case focusAuthor:
		m.author.Focus()
	}
}
