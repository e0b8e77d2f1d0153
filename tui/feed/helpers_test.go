package feed

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/ideaboard/domain"
)

type stubIdeas struct {
	mu      sync.Mutex
	calls   []string
	queries []domain.ListQuery
	votes   []domain.ID
	list    []domain.Idea
	listErr error
	voteErr error
}

func (s *stubIdeas) List(_ context.Context, q domain.ListQuery) ([]domain.Idea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "list")
	s.queries = append(s.queries, q)
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]domain.Idea(nil), s.list...), nil
}

func (s *stubIdeas) Create(context.Context, domain.NewIdea) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "create")
	return nil
}

func (s *stubIdeas) Upvote(_ context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "upvote")
	s.votes = append(s.votes, id)
	return s.voteErr
}

func makeIdea(id int64, title string, votes int) domain.Idea {
	return domain.Idea{
		ID:          domain.NumericID(id),
		Title:       title,
		Description: "description of " + title,
		Votes:       votes,
		CreatedAt:   time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// loaded runs a fetch command and feeds its result back into the model.
// Spinner ticks are dropped; they would keep the chain alive.
func loaded(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = loaded(m, c)
		}
	case spinner.TickMsg:
	default:
		m, _ = m.Update(msg)
	}
	return m
}
