package ideaapi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/CrestNiraj12/ideaboard/domain"
)

// apiIdea is the idea entity as served by the board API. Every field but
// id/title/description may be missing.
type apiIdea struct {
	ID          domain.ID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Link        string    `json:"link"`
	Tags        []string  `json:"tags"`
	Votes       looseInt  `json:"votes"`
	Comments    looseInt  `json:"comments"`
	CreatedAt   looseTime `json:"created_at"`
}

// apiIdeaDetail is the subset of GET /api/ideas/{id} the client reads.
type apiIdeaDetail struct {
	CommentsList []apiComment `json:"comments_list"`
}

type apiComment struct {
	ID        domain.ID `json:"id"`
	IdeaID    domain.ID `json:"idea_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt looseTime `json:"created_at"`
}

type createIdeaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author,omitempty"`
	Link        string   `json:"link,omitempty"`
	Tags        []string `json:"tags"`
}

type voteRequest struct {
	IdeaID domain.ID `json:"idea_id"`
}

type commentRequest struct {
	IdeaID  domain.ID `json:"idea_id"`
	Content string    `json:"content"`
	Author  string    `json:"author,omitempty"`
}

func mapIdeas(in []apiIdea) []domain.Idea {
	out := make([]domain.Idea, 0, len(in))
	for _, it := range in {
		out = append(out, domain.Idea{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Author:      strings.TrimSpace(it.Author),
			Link:        strings.TrimSpace(it.Link),
			Tags:        it.Tags,
			Votes:       max(int(it.Votes), 0),
			Comments:    max(int(it.Comments), 0),
			CreatedAt:   time.Time(it.CreatedAt),
		})
	}
	return out
}

func mapComments(ideaID domain.ID, in []apiComment) []domain.Comment {
	out := make([]domain.Comment, 0, len(in))
	for _, c := range in {
		owner := c.IdeaID
		if owner.IsZero() {
			owner = ideaID
		}
		out = append(out, domain.Comment{
			ID:        c.ID,
			IdeaID:    owner,
			Author:    strings.TrimSpace(c.Author),
			Content:   c.Content,
			CreatedAt: time.Time(c.CreatedAt),
		})
	}
	return out
}

// Backends in the wild emit RFC 3339 as well as naive ISO timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseTimestamp returns the zero time for empty or unparseable input.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// looseInt decodes a counter sent as a number or a numeric string. Anything
// else, null included, becomes 0 so one odd field never fails a whole list.
type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	*n = 0
	raw := strings.TrimSpace(string(data))
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		raw = strings.TrimSpace(s)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*n = looseInt(f)
	}
	return nil
}

// looseTime decodes a timestamp string or a number of epoch milliseconds.
// Unknown shapes become the zero time.
type looseTime time.Time

func (t *looseTime) UnmarshalJSON(data []byte) error {
	*t = looseTime{}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = looseTime(parseTimestamp(s))
		return nil
	}
	if ms, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64); err == nil {
		*t = looseTime(time.UnixMilli(int64(ms)).UTC())
	}
	return nil
}
