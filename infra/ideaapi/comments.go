package ideaapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CrestNiraj12/ideaboard/domain"
)

// commentService implements app.CommentService using the board API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the board API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// Thread reads the idea detail and returns its comments_list.
func (s *commentService) Thread(ctx context.Context, ideaID domain.ID) ([]domain.Comment, error) {
	path := "/api/ideas/" + url.PathEscape(ideaID.String())
	var detail apiIdeaDetail
	if err := s.client.GetJSON(ctx, path, nil, &detail); err != nil {
		return nil, fmt.Errorf("fetching comments of idea %s: %w", ideaID, err)
	}
	return mapComments(ideaID, detail.CommentsList), nil
}

func (s *commentService) Add(ctx context.Context, c domain.NewComment) error {
	body := commentRequest{
		IdeaID:  c.IdeaID,
		Content: c.Content,
		Author:  c.Author,
	}
	if err := s.client.PostJSON(ctx, "/api/comments", body); err != nil {
		return fmt.Errorf("adding comment to idea %s: %w", c.IdeaID, err)
	}
	return nil
}
