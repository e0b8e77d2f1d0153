package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/app"
	"github.com/CrestNiraj12/ideaboard/infra/editor"
	"github.com/CrestNiraj12/ideaboard/tui/common"
	"github.com/CrestNiraj12/ideaboard/tui/compose"
	"github.com/CrestNiraj12/ideaboard/tui/detail"
	"github.com/CrestNiraj12/ideaboard/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Ideas    app.IdeaService
	Comments app.CommentService
	Editor   *editor.EnvEditor // Optional
	Log      *zap.Logger
}

// App is the root Bubble Tea model and the only holder of UI selection
// state: the active idea and whether the creation form is open. The current
// filter and sort live in the list model.
type App struct {
	deps      Deps
	feed      feed.Model
	compose   compose.Model
	detail    *detail.Model // nil while no idea is active
	modalOpen bool
	keys      common.KeyMap
	size      tea.WindowSizeMsg
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return App{
		deps:    deps,
		feed:    feed.New(deps.Ideas, deps.Log),
		compose: compose.New(deps.Ideas, deps.Editor, deps.Log),
		keys:    common.DefaultKeyMap(),
	}
}

// Init starts the first list read.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Feed returns the list model.
func (a App) Feed() feed.Model { return a.feed }

// Detail returns the active idea's model, or nil.
func (a App) Detail() *detail.Model { return a.detail }

// ModalOpen reports whether the creation form is shown.
func (a App) ModalOpen() bool { return a.modalOpen }

// Update routes messages to the sub-models.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = msg
		a.feed, _ = a.feed.Update(msg)
		a.compose, _ = a.compose.Update(msg)
		if a.detail != nil {
			d, _ := a.detail.Update(msg)
			a.detail = &d
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case feed.OpenIdeaMsg:
		d := detail.New(msg.Idea, a.deps.Comments, a.deps.Log)
		if a.size.Width > 0 {
			d, _ = d.Update(a.size)
		}
		a.detail = &d
		return a, d.Init()

	case detail.CloseMsg:
		a.detail = nil
		return a, nil

	case detail.UpvoteMsg:
		return a, a.feed.Upvote(msg.Idea.ID)

	case detail.ThreadLoadedMsg, detail.ThreadErrorMsg, detail.CommentAddedMsg:
		// Results that arrive after the detail closed are dropped.
		if a.detail == nil {
			return a, nil
		}
		d, cmd := a.detail.Update(msg)
		a.detail = &d
		return a, cmd

	case compose.DoneMsg:
		a.modalOpen = false
		if msg.Created {
			cmd := a.feed.Refresh()
			return a, cmd
		}
		return a, nil
	}

	// List results, spinner ticks and form results. Each sub-model ignores
	// what is not its own.
	var feedCmd, composeCmd tea.Cmd
	a.feed, feedCmd = a.feed.Update(msg)
	a.compose, composeCmd = a.compose.Update(msg)
	return a, tea.Batch(feedCmd, composeCmd)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	if a.modalOpen {
		var cmd tea.Cmd
		a.compose, cmd = a.compose.Update(msg)
		return a, cmd
	}

	typing := a.detail != nil && a.detail.Typing()
	if !typing {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.New):
			a.modalOpen = true
			return a, a.compose.Init()
		}
	}

	if a.detail != nil {
		d, cmd := a.detail.Update(msg)
		a.detail = &d
		return a, cmd
	}

	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	return a, cmd
}

// View renders the form over everything, else the detail, else the list.
func (a App) View() string {
	switch {
	case a.modalOpen:
		form := a.compose.View()
		if a.size.Width == 0 || a.size.Height == 0 {
			return feed.Header() + "\n\n" + form
		}
		return lipgloss.Place(a.size.Width, a.size.Height, lipgloss.Center, lipgloss.Center, form)
	case a.detail != nil:
		return a.detail.View()
	default:
		return a.feed.View()
	}
}
