package feed

import (
	"errors"
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/ideaboard/domain"
)

func TestPeriodKeys_RefetchOnlyOnChange(t *testing.T) {
	stub := &stubIdeas{}
	m := New(stub, nil)
	m.loading = false

	m, cmd := m.Update(runeKey('2'))
	if cmd == nil || !m.Loading() {
		t.Fatalf("changing the period must start a read")
	}
	m = loaded(m, cmd)
	if got := stub.queries[0]; got.Period != domain.PeriodWeek || got.Sort != domain.SortVotes {
		t.Fatalf("unexpected query: %#v", got)
	}

	if _, cmd = m.Update(runeKey('2')); cmd != nil {
		t.Fatalf("re-selecting the same period must not read again")
	}

	m, cmd = m.Update(runeKey('f'))
	m = loaded(m, cmd)
	if m.Query().Period != domain.PeriodMonth {
		t.Fatalf("f must cycle week -> month, got %s", m.Query().Period)
	}
	m, cmd = m.Update(runeKey('1'))
	_ = loaded(m, cmd)
	if len(stub.queries) != 3 || stub.queries[2].Period != domain.PeriodAll {
		t.Fatalf("unexpected query history: %#v", stub.queries)
	}
}

func TestSortKey_TogglesAndRefetches(t *testing.T) {
	stub := &stubIdeas{}
	m := New(stub, nil)

	m, cmd := m.Update(runeKey('s'))
	m = loaded(m, cmd)
	if m.Query().Sort != domain.SortComments || stub.queries[0].Sort != domain.SortComments {
		t.Fatalf("expected comments sort, got %#v", stub.queries)
	}
	m, cmd = m.Update(runeKey('s'))
	_ = loaded(m, cmd)
	if stub.queries[1].Sort != domain.SortVotes {
		t.Fatalf("expected votes sort on second toggle")
	}
}

func TestUpvote_WriteThenRefetchWithCurrentQuery(t *testing.T) {
	stub := &stubIdeas{list: []domain.Idea{makeIdea(7, "x", 1)}}
	m := New(stub, nil)
	m.items = []domain.Idea{makeIdea(7, "x", 0)}
	m.query = domain.ListQuery{Period: domain.PeriodMonth, Sort: domain.SortComments}

	m, cmd := m.Update(runeKey('u'))
	if cmd == nil {
		t.Fatalf("expected upvote command")
	}
	voted := cmd()
	if m.Ideas()[0].Votes != 0 {
		t.Fatalf("vote count must never be patched locally")
	}
	m, cmd = m.Update(voted)
	if cmd == nil || !m.Loading() {
		t.Fatalf("a successful upvote must trigger a re-read")
	}
	m = loaded(m, cmd)

	if !reflect.DeepEqual(stub.calls, []string{"upvote", "list"}) {
		t.Fatalf("unexpected call order: %v", stub.calls)
	}
	if stub.votes[0] != domain.NumericID(7) {
		t.Fatalf("unexpected voted id: %v", stub.votes[0])
	}
	if stub.queries[0] != m.Query() {
		t.Fatalf("re-read must use the current filter/sort, got %#v", stub.queries[0])
	}
	if m.Ideas()[0].Votes != 1 {
		t.Fatalf("vote count must come from the server")
	}
}

func TestUpvote_FailureIsSilent(t *testing.T) {
	stub := &stubIdeas{voteErr: errors.New("offline")}
	m := New(stub, nil)
	m.loading = false
	m.items = []domain.Idea{makeIdea(1, "x", 0)}

	_, cmd := m.Update(runeKey('u'))
	m, next := m.Update(cmd())
	if next != nil {
		t.Fatalf("a failed upvote must not re-read")
	}
	if m.Err() != nil || m.Loading() {
		t.Fatalf("a failed upvote must not surface an error")
	}
}

func TestUpvote_RepeatedPressesAreNotCoalesced(t *testing.T) {
	stub := &stubIdeas{}
	m := New(stub, nil)
	m.items = []domain.Idea{makeIdea(1, "x", 0)}

	_, first := m.Update(runeKey('u'))
	_, second := m.Update(runeKey('u'))
	first()
	second()
	if len(stub.votes) != 2 {
		t.Fatalf("expected two independent votes, got %d", len(stub.votes))
	}
}

func TestRefreshMsg_ReReads(t *testing.T) {
	stub := &stubIdeas{}
	m := New(stub, nil)
	m, cmd := m.Update(RefreshMsg{})
	_ = loaded(m, cmd)
	if len(stub.queries) != 1 {
		t.Fatalf("expected one read, got %d", len(stub.queries))
	}
}

func TestSpinner_TicksOnlyWhileLoading(t *testing.T) {
	m := New(&stubIdeas{}, nil)
	tick := m.spinner.Tick()
	if _, cmd := m.Update(tick); cmd == nil {
		t.Fatalf("spinner must keep ticking while the first read is in flight")
	}

	m, _ = m.Update(IdeasLoadedMsg{})
	if _, cmd := m.Update(tick); cmd != nil {
		t.Fatalf("an idle list must stop the spinner")
	}
}

func TestRefresh_RestartsSpinnerWhenIdle(t *testing.T) {
	m := New(&stubIdeas{}, nil)
	m, _ = m.Update(IdeasLoadedMsg{})

	cmd := m.Refresh()
	batch, ok := cmd().(tea.BatchMsg)
	if !ok || len(batch) != 2 {
		t.Fatalf("expected fetch and spinner tick, got %#v", batch)
	}
	var ticked bool
	for _, c := range batch {
		if _, ok := c().(spinner.TickMsg); ok {
			ticked = true
		}
	}
	if !ticked {
		t.Fatalf("refresh from idle must restart the spinner")
	}

	// Already loading: the running tick chain is reused.
	if _, ok := m.Refresh()().(IdeasLoadedMsg); !ok {
		t.Fatalf("refresh while loading must only fetch")
	}
}
