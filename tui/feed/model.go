package feed

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/app"
	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/tui/common"
)

// LoadErrorText is the only error a user ever sees from the list.
const LoadErrorText = "Failed to load ideas"

// --- Messages ---

// IdeasLoadedMsg is sent when a list read completes successfully.
type IdeasLoadedMsg struct {
	Ideas []domain.Idea
	Query domain.ListQuery
}

// IdeasErrorMsg is sent when a list read fails.
type IdeasErrorMsg struct {
	Err   error
	Query domain.ListQuery
}

// VotedMsg is sent after an upvote write.
type VotedMsg struct {
	ID  domain.ID
	Err error
}

// RefreshMsg asks the list to re-read with the current filter and sort.
type RefreshMsg struct{}

// OpenIdeaMsg is sent when the user opens the detail of an idea.
type OpenIdeaMsg struct {
	Idea domain.Idea
}

// --- Model ---

// Model holds the state for the idea list. The collection is replaced
// wholesale by every read; responses apply in arrival order.
type Model struct {
	ideas   app.IdeaService
	log     *zap.Logger
	items   []domain.Idea
	query   domain.ListQuery
	cursor  int
	start   int // First visible card
	loading bool
	err     error
	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a list model with injected dependencies.
func New(ideas app.IdeaService, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DC4E4"))

	return Model{
		ideas:   ideas,
		log:     log.Named("feed"),
		query:   domain.DefaultListQuery(),
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the initial list read.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchIdeas(),
		m.spinner.Tick,
	)
}

// Refresh marks the list loading and returns the re-read Cmd. The spinner
// only ticks while a read is in flight, so an idle list restarts it.
func (m *Model) Refresh() tea.Cmd {
	wasLoading := m.loading
	m.loading = true
	m.err = nil
	if wasLoading {
		return m.fetchIdeas()
	}
	return tea.Batch(m.fetchIdeas(), m.spinner.Tick)
}

// Upvote returns a Cmd that records one vote for id. Each call is its own
// request; nothing is coalesced.
func (m Model) Upvote(id domain.ID) tea.Cmd {
	ideas := m.ideas
	return func() tea.Msg {
		err := ideas.Upvote(context.Background(), id)
		return VotedMsg{ID: id, Err: err}
	}
}

func (m Model) fetchIdeas() tea.Cmd {
	ideas := m.ideas
	q := m.query
	return func() tea.Msg {
		list, err := ideas.List(context.Background(), q)
		if err != nil {
			return IdeasErrorMsg{Err: err, Query: q}
		}
		return IdeasLoadedMsg{Ideas: list, Query: q}
	}
}

// Ideas returns the current collection for external access.
func (m Model) Ideas() []domain.Idea {
	return m.items
}

// Query returns the current filter/sort selection.
func (m Model) Query() domain.ListQuery {
	return m.query
}

// Loading returns whether a list read is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the last list read error, if any.
func (m Model) Err() error {
	return m.err
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedIdea returns the currently highlighted idea, if any.
func (m Model) SelectedIdea() (domain.Idea, bool) {
	if len(m.items) == 0 {
		return domain.Idea{}, false
	}
	return m.items[m.cursor], true
}
