package compose

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/infra/editor"
)

type stubIdeas struct {
	created   []domain.NewIdea
	createErr error
}

func (s *stubIdeas) List(context.Context, domain.ListQuery) ([]domain.Idea, error) {
	return nil, nil
}

func (s *stubIdeas) Create(_ context.Context, idea domain.NewIdea) error {
	s.created = append(s.created, idea)
	return s.createErr
}

func (s *stubIdeas) Upvote(context.Context, domain.ID) error { return nil }

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, t tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: t})
}

func TestSubmit_BlankRequiredFieldsSendNothing(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.IdeaDraft
	}{
		{"empty", domain.IdeaDraft{}},
		{"blank title", domain.IdeaDraft{Title: "   ", Description: "d"}},
		{"blank description", domain.IdeaDraft{Title: "t", Description: "\n\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubIdeas{}
			m := New(stub, nil, nil)
			m.SetDraft(tt.draft)

			m, cmd := press(m, tea.KeyCtrlS)
			if cmd != nil {
				t.Fatalf("expected no request, got a command")
			}
			if len(stub.created) != 0 {
				t.Fatalf("expected no create call")
			}
			if m.Draft() != tt.draft {
				t.Fatalf("fields must be untouched, got %#v", m.Draft())
			}
		})
	}
}

func TestSubmit_TypedFormBuildsPayload(t *testing.T) {
	stub := &stubIdeas{}
	m := New(stub, nil, nil)

	m = typeText(m, "Shared pomodoro")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "Focus timers with friends")
	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyTab) // author left blank
	m = typeText(m, "https://example.com")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "AI, , Productivity ,ok")

	_, cmd := press(m, tea.KeyCtrlS)
	if cmd == nil {
		t.Fatalf("expected create command")
	}
	if got, ok := cmd().(CreatedMsg); !ok || got.Err != nil {
		t.Fatalf("unexpected result: %#v", got)
	}

	want := domain.NewIdea{
		Title:       "Shared pomodoro",
		Description: "Focus timers with friends",
		Link:        "https://example.com",
		Tags:        []string{"AI", "Productivity", "ok"},
	}
	if len(stub.created) != 1 || !reflect.DeepEqual(stub.created[0], want) {
		t.Fatalf("unexpected payload: %#v", stub.created)
	}
}

func TestCreated_SuccessResetsAndCloses(t *testing.T) {
	m := New(&stubIdeas{}, nil, nil)
	m.SetDraft(domain.IdeaDraft{Title: "t", Description: "d", Author: "ada", Tags: "x"})
	m, _ = press(m, tea.KeyTab)

	m, cmd := m.Update(CreatedMsg{})
	if cmd == nil {
		t.Fatalf("expected close command")
	}
	if got := cmd(); got != (DoneMsg{Created: true}) {
		t.Fatalf("unexpected message: %#v", got)
	}
	if m.Draft() != (domain.IdeaDraft{}) {
		t.Fatalf("fields must be reset, got %#v", m.Draft())
	}
	if m.focus != fieldTitle {
		t.Fatalf("focus must return to the title")
	}
}

func TestCreated_FailureKeepsFormOpen(t *testing.T) {
	m := New(&stubIdeas{}, nil, nil)
	draft := domain.IdeaDraft{Title: "t", Description: "d"}
	m.SetDraft(draft)

	m, cmd := m.Update(CreatedMsg{Err: errors.New("connection refused")})
	if cmd != nil {
		t.Fatalf("a failed create must not close the form")
	}
	if m.Draft() != draft {
		t.Fatalf("fields must be kept")
	}
}

func TestEsc_ClosesAndKeepsFields(t *testing.T) {
	stub := &stubIdeas{}
	m := New(stub, nil, nil)
	draft := domain.IdeaDraft{Title: "half", Tags: "a"}
	m.SetDraft(draft)

	m, cmd := press(m, tea.KeyEsc)
	if cmd == nil || cmd() != (DoneMsg{}) {
		t.Fatalf("esc must close without creating")
	}
	if len(stub.created) != 0 {
		t.Fatalf("esc must not send")
	}
	if m.Draft() != draft {
		t.Fatalf("cancel must keep field values")
	}
}

func TestFocus_Cycles(t *testing.T) {
	m := New(&stubIdeas{}, nil, nil)
	for range fieldCount {
		m, _ = press(m, tea.KeyTab)
	}
	if m.focus != fieldTitle {
		t.Fatalf("tab must wrap around, got %d", m.focus)
	}
	m, _ = press(m, tea.KeyShiftTab)
	if m.focus != fieldTags {
		t.Fatalf("shift+tab from title must reach tags, got %d", m.focus)
	}
	m = typeText(m, "go")
	if m.Draft().Tags != "go" || m.Draft().Title != "" {
		t.Fatalf("typing must go to the focused field, got %#v", m.Draft())
	}
}

func TestEditorFinished_ReplacesDescription(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("EDITOR", "true")
	ed := editor.NewEnvEditor()
	m := New(&stubIdeas{}, ed, nil)
	m.SetDraft(domain.IdeaDraft{Description: "draft"})

	_, path, err := ed.Cmd("rewritten in the editor")
	if err != nil {
		t.Fatalf("Cmd: %v", err)
	}
	m, cmd := m.Update(editorFinishedMsg{tmpPath: path})
	if cmd != nil {
		t.Fatalf("expected no command")
	}
	if got := m.Draft().Description; got != "rewritten in the editor" {
		t.Fatalf("description = %q", got)
	}
}

func TestView_ListsFields(t *testing.T) {
	view := New(&stubIdeas{}, nil, nil).View()
	for _, want := range []string{"Title *", "Description *", "Your name", "Link", "Tags", "ctrl+s"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "$EDITOR") {
		t.Fatalf("editor hint must be hidden without an editor")
	}
}
