package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4")).
			Padding(1, 0, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// TitleStyle styles idea titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F4F4F5"))

	// ContentStyle styles idea descriptions and comment bodies.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// MetadataStyle styles vote and comment counters.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8087A2"))

	// VoteStyle styles the upvote counter box.
	VoteStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			Align(lipgloss.Center)

	// LinkStyle styles external links.
	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DC4E4")).
			Underline(true)

	// SelectedStyle highlights the currently selected idea.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0284C7")).
			Padding(0, 1)

	// UnselectedStyle gives unselected ideas a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#313244")).
			Padding(0, 1)

	// PanelStyle frames modal surfaces (form, detail).
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(1, 2)

	// SegmentActiveStyle styles the chosen filter/sort segment.
	SegmentActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7DC4E4")).
				Background(lipgloss.Color("#1E293B")).
				Bold(true).
				Padding(0, 1)

	// SegmentInactiveStyle styles the other filter/sort segments.
	SegmentInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#A5ADCB")).
				Padding(0, 1)

	// LabelStyle styles field and control labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8087A2"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// PlaceholderStyle styles empty-state hints.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6C7086"))

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// BadgeStyle styles tag badges.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DC4E4")).
			Background(lipgloss.Color("#1E293B")).
			Padding(0, 1)
)
