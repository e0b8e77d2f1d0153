package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/ideaboard/tui/common"
	"github.com/CrestNiraj12/ideaboard/tui/feed"
)

// EmptyThreadText is shown for an idea without comments.
const EmptyThreadText = "No comments yet. Be the first!"

// View renders the idea and its thread.
func (m Model) View() string {
	width := m.panelWidth()
	var b strings.Builder

	b.WriteString(feed.Header() + "\n\n")

	var idea strings.Builder
	idea.WriteString(common.TitleStyle.Render(m.idea.Title) + "  ")
	idea.WriteString(common.TimestampStyle.Render(feed.FormatDate(m.idea.CreatedAt)) + "\n")
	idea.WriteString(common.VoteStyle.Render(fmt.Sprintf("▲ %d", m.idea.Votes)) + "\n\n")
	idea.WriteString(common.ContentStyle.Width(width-4).Render(m.idea.Description) + "\n")
	if tags := common.Badges(m.idea.Tags); tags != "" {
		idea.WriteString("\n" + tags + "\n")
	}
	if m.idea.Author != "" {
		idea.WriteString("\n" + common.MetadataStyle.Render("by ") + common.AuthorStyle.Render(m.idea.Author))
	}
	if m.idea.Link != "" {
		idea.WriteString("\n" + common.LinkStyle.Render(m.idea.Link))
	}
	b.WriteString(common.PanelStyle.Width(width).Render(idea.String()) + "\n\n")

	b.WriteString(common.LabelStyle.Render(fmt.Sprintf("Comments (%d)", len(m.thread))) + "\n\n")
	if len(m.thread) == 0 {
		b.WriteString(common.PlaceholderStyle.Render("  "+EmptyThreadText) + "\n")
	}
	for _, c := range m.thread {
		header := common.AuthorStyle.Render(c.DisplayAuthor()) + "  " +
			common.TimestampStyle.Render(formatDateTime(c.CreatedAt))
		body := common.ContentStyle.Width(width - 4).Render(c.Content)
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(header+"\n"+body) + "\n\n")
	}

	b.WriteString(m.content.View() + "\n")
	b.WriteString(m.author.View() + "\n\n")

	if m.Typing() {
		b.WriteString(common.HelpLine(sendKey, m.keys.NextField, m.keys.Back))
	} else {
		b.WriteString(common.HelpLine(m.keys.Upvote, m.keys.Comment, m.keys.Link, m.keys.Back))
	}
	return b.String()
}

func (m Model) panelWidth() int {
	if m.width <= 0 {
		return 76
	}
	return min(max(m.width-4, 40), 100)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}
