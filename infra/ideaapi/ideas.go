package ideaapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CrestNiraj12/ideaboard/domain"
)

// ideaService implements app.IdeaService using the board API.
type ideaService struct {
	client *Client
}

// NewIdeaService creates an IdeaService backed by the board API.
func NewIdeaService(client *Client) *ideaService {
	return &ideaService{client: client}
}

func (s *ideaService) List(ctx context.Context, q domain.ListQuery) ([]domain.Idea, error) {
	var ideas []apiIdea
	if err := s.client.GetJSON(ctx, "/api/ideas", listValues(q), &ideas); err != nil {
		return nil, fmt.Errorf("fetching ideas: %w", err)
	}
	return mapIdeas(ideas), nil
}

func (s *ideaService) Create(ctx context.Context, idea domain.NewIdea) error {
	tags := idea.Tags
	if tags == nil {
		tags = []string{}
	}
	body := createIdeaRequest{
		Title:       idea.Title,
		Description: idea.Description,
		Author:      idea.Author,
		Link:        idea.Link,
		Tags:        tags,
	}
	if err := s.client.PostJSON(ctx, "/api/ideas", body); err != nil {
		return fmt.Errorf("creating idea: %w", err)
	}
	return nil
}

func (s *ideaService) Upvote(ctx context.Context, id domain.ID) error {
	if err := s.client.PostJSON(ctx, "/api/votes", voteRequest{IdeaID: id}); err != nil {
		return fmt.Errorf("upvoting idea %s: %w", id, err)
	}
	return nil
}

// listValues always carries sort; period only narrows when it is not "all".
func listValues(q domain.ListQuery) url.Values {
	v := url.Values{}
	if q.Period != "" && q.Period != domain.PeriodAll {
		v.Set("period", string(q.Period))
	}
	sort := q.Sort
	if sort == "" {
		sort = domain.SortVotes
	}
	v.Set("sort", string(sort))
	return v
}
