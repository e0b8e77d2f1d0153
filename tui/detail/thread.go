package detail

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/tui/feed"
)

// ThreadLoadedMsg carries the comments of one idea.
type ThreadLoadedMsg struct {
	IdeaID   domain.ID
	Comments []domain.Comment
}

// ThreadErrorMsg is sent when the thread read fails. It is only logged.
type ThreadErrorMsg struct {
	IdeaID domain.ID
	Err    error
}

// CommentAddedMsg is sent after the comment write completes.
type CommentAddedMsg struct {
	IdeaID domain.ID
	Err    error
}

func (m Model) fetchThread() tea.Cmd {
	comments := m.comments
	id := m.idea.ID
	return func() tea.Msg {
		list, err := comments.Thread(context.Background(), id)
		if err != nil {
			return ThreadErrorMsg{IdeaID: id, Err: err}
		}
		return ThreadLoadedMsg{IdeaID: id, Comments: list}
	}
}

// submit posts the comment form. Blank content sends nothing.
func (m Model) submit() tea.Cmd {
	draft := domain.CommentDraft{Content: m.content.Value(), Author: m.author.Value()}
	c, err := draft.Build(m.idea.ID)
	if err != nil {
		m.log.Debug("comment ignored", zap.Error(err))
		return nil
	}
	comments := m.comments
	return func() tea.Msg {
		return CommentAddedMsg{IdeaID: c.IdeaID, Err: comments.Add(context.Background(), c)}
	}
}

// updateThread applies thread results. Results for another idea are stale
// and dropped.
func (m Model) updateThread(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThreadLoadedMsg:
		if msg.IdeaID != m.idea.ID {
			return m, nil
		}
		m.thread = msg.Comments
		return m, nil

	case ThreadErrorMsg:
		if msg.IdeaID == m.idea.ID {
			m.log.Warn("thread fetch failed", zap.Stringer("idea_id", msg.IdeaID), zap.Error(msg.Err))
		}
		return m, nil

	case CommentAddedMsg:
		if msg.IdeaID != m.idea.ID {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn("add comment failed", zap.Stringer("idea_id", msg.IdeaID), zap.Error(msg.Err))
			return m, nil
		}
		m.content.SetValue("")
		m.author.SetValue("")
		return m, tea.Batch(
			m.fetchThread(),
			func() tea.Msg { return feed.RefreshMsg{} },
		)
	}
	return m, nil
}
