package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/tui/common"
)

// View renders the list as a string.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(Header() + "\n\n")
	b.WriteString(m.renderControls() + "\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("  %s Loading ideas...\n", m.spinner.View()))
	}
	if m.err != nil {
		b.WriteString("  " + common.ErrorStyle.Render(LoadErrorText) + "\n")
	}
	if !m.loading && m.err == nil && len(m.items) == 0 {
		b.WriteString(common.PlaceholderStyle.Render("  No ideas yet. Press n to post the first one!") + "\n")
	}

	width := m.cardWidth()
	end := min(m.start+m.visibleCount(), len(m.items))
	for i := m.start; i < end; i++ {
		b.WriteString(renderCard(m.items[i], i == m.cursor, width) + "\n")
	}
	if len(m.items) > 0 {
		b.WriteString(common.TimestampStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.items))) + "\n")
	}

	b.WriteString(common.HelpLine(
		m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Upvote, m.keys.New,
		m.keys.Period, m.keys.Sort, m.keys.Link, m.keys.Refresh, m.keys.Quit,
	))
	return b.String()
}

// Header renders the app title and tagline shared by every view.
func Header() string {
	title := common.AppTitleStyle.Render(domain.DisplayAppTitle())
	tagline := common.TaglineStyle.Render(domain.AppTagline)
	return title + tagline
}

func (m Model) renderControls() string {
	periods := make([]string, 0, len(domain.Periods))
	for _, p := range domain.Periods {
		periods = append(periods, segment(p.Label(), p == m.query.Period))
	}
	sorts := make([]string, 0, len(domain.SortKeys))
	for _, s := range domain.SortKeys {
		sorts = append(sorts, segment(string(s), s == m.query.Sort))
	}
	return "  " + common.LabelStyle.Render("Filter ") + strings.Join(periods, "") +
		"    " + common.LabelStyle.Render("Sort by ") + strings.Join(sorts, "")
}

func segment(label string, active bool) string {
	if active {
		return common.SegmentActiveStyle.Render(label)
	}
	return common.SegmentInactiveStyle.Render(label)
}

func (m Model) cardWidth() int {
	if m.width <= 0 {
		return 76
	}
	return min(max(m.width-4, 40), 100)
}

func renderCard(idea domain.Idea, selected bool, width int) string {
	votes := common.VoteStyle.Render(fmt.Sprintf("▲\n%d", idea.Votes))
	bodyWidth := max(width-lipgloss.Width(votes)-5, 20)

	date := common.TimestampStyle.Render(FormatDate(idea.CreatedAt))
	titleWidth := max(bodyWidth-lipgloss.Width(date)-1, 8)
	title := common.TitleStyle.Render(ansi.Truncate(idea.Title, titleWidth, "…"))
	gap := max(bodyWidth-lipgloss.Width(title)-lipgloss.Width(date), 1)

	lines := []string{
		title + strings.Repeat(" ", gap) + date,
		common.ContentStyle.Render(truncateToTwoLines(idea.Description, bodyWidth)),
	}
	if tags := common.Badges(idea.Tags); tags != "" {
		lines = append(lines, ansi.Truncate(tags, bodyWidth, "…"))
	}
	lines = append(lines, renderMeta(idea))

	body := strings.Join(lines, "\n")
	card := lipgloss.JoinHorizontal(lipgloss.Top, votes, " ", body)

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(width).Render(card)
}

func renderMeta(idea domain.Idea) string {
	parts := []string{common.MetadataStyle.Render(fmt.Sprintf("💬 %d comments", idea.Comments))}
	if idea.Author != "" {
		parts = append(parts, common.MetadataStyle.Render("by ")+common.AuthorStyle.Render(idea.Author))
	}
	if idea.Link != "" {
		parts = append(parts, common.LinkStyle.Render("link"))
	}
	return strings.Join(parts, "  ")
}

// FormatDate renders a creation date; a missing date shows as today.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Local().Format("Jan 2, 2006")
}

func truncateToTwoLines(text string, width int) string {
	if width < 12 {
		width = 12
	}
	// Render with width to handle both explicit newlines and wrapping.
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= 2 {
		return wrapped
	}
	return strings.Join(lines[:2], "\n") + "..."
}
