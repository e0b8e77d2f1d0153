package domain

import "time"

const (
	AppTitle   = "Vibe Hunt"
	AppTagline = "Discover and upvote the best app ideas"

	// AnonymousAuthor is shown for comments posted without a name.
	AnonymousAuthor = "Anonymous"
)

// DisplayAppTitle returns the title rendered in every view header.
func DisplayAppTitle() string {
	return "💡 " + AppTitle
}

// Idea is a submitted proposal as returned by the board API.
// Votes and Comments are server counters; the client only ever replaces them.
type Idea struct {
	ID          ID
	Title       string
	Description string
	Author      string // Optional
	Link        string // Optional
	Tags        []string
	Votes       int
	Comments    int
	CreatedAt   time.Time // Zero when the server omitted it
}

// Comment is a reply attached to exactly one idea.
type Comment struct {
	ID        ID
	IdeaID    ID
	Author    string // Optional
	Content   string
	CreatedAt time.Time
}

// DisplayAuthor returns the comment author, or AnonymousAuthor when unset.
func (c Comment) DisplayAuthor() string {
	if c.Author == "" {
		return AnonymousAuthor
	}
	return c.Author
}

// NewIdea is the creation payload for an idea.
type NewIdea struct {
	Title       string
	Description string
	Author      string // Omitted on the wire when empty
	Link        string // Omitted on the wire when empty
	Tags        []string
}

// NewComment is the creation payload for a comment.
type NewComment struct {
	IdeaID  ID
	Content string
	Author  string // Omitted on the wire when empty
}
