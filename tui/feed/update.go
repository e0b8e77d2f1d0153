package feed

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/tui/common"
)

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case IdeasLoadedMsg:
		m.items = msg.Ideas
		m.loading = false
		m.err = nil
		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		m.ensureCursorVisible()
		return m, nil

	case IdeasErrorMsg:
		m.log.Warn("list fetch failed", zap.Error(msg.Err))
		m.loading = false
		m.err = msg.Err
		return m, nil

	case VotedMsg:
		if msg.Err != nil {
			m.log.Warn("upvote failed", zap.Stringer("idea_id", msg.ID), zap.Error(msg.Err))
			return m, nil
		}
		cmd = m.Refresh()
		return m, cmd

	case RefreshMsg:
		cmd = m.Refresh()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.Refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.AllTime):
		return m.setPeriod(domain.PeriodAll)
	case key.Matches(msg, m.keys.ThisWeek):
		return m.setPeriod(domain.PeriodWeek)
	case key.Matches(msg, m.keys.ThisMonth):
		return m.setPeriod(domain.PeriodMonth)
	case key.Matches(msg, m.keys.Period):
		return m.setPeriod(m.query.Period.Next())

	case key.Matches(msg, m.keys.Sort):
		return m.setSort(m.query.Sort.Toggle())

	case key.Matches(msg, m.keys.Upvote):
		if idea, ok := m.SelectedIdea(); ok {
			return m, m.Upvote(idea.ID)
		}

	case key.Matches(msg, m.keys.Open):
		if idea, ok := m.SelectedIdea(); ok {
			return m, func() tea.Msg { return OpenIdeaMsg{Idea: idea} }
		}

	case key.Matches(msg, m.keys.Link):
		if idea, ok := m.SelectedIdea(); ok {
			return m, common.OpenURL(idea.Link)
		}
	}

	return m, nil
}

// setPeriod re-reads only when the selection actually changes.
func (m Model) setPeriod(p domain.Period) (Model, tea.Cmd) {
	if p == m.query.Period {
		return m, nil
	}
	m.query.Period = p
	cmd := m.Refresh()
	return m, cmd
}

func (m Model) setSort(s domain.SortKey) (Model, tea.Cmd) {
	if s == m.query.Sort {
		return m, nil
	}
	m.query.Sort = s
	cmd := m.Refresh()
	return m, cmd
}

// cardHeight is the rendered height of one idea card including its border.
const cardHeight = 7

func (m Model) visibleCount() int {
	// Header, controls, status lines and help take roughly 10 lines.
	available := m.height - 10
	return max(available/cardHeight, 1)
}

func (m *Model) ensureCursorVisible() {
	if len(m.items) == 0 {
		m.cursor, m.start = 0, 0
		return
	}
	visible := m.visibleCount()
	if m.cursor < m.start {
		m.start = m.cursor
	}
	if m.cursor >= m.start+visible {
		m.start = m.cursor - visible + 1
	}
	m.start = min(max(m.start, 0), len(m.items)-1)
}
