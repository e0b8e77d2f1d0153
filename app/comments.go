package app

import (
	"context"

	"github.com/CrestNiraj12/ideaboard/domain"
)

// CommentService reads and posts the comment thread of an idea.
type CommentService interface {
	// Thread returns the comments of an idea, in server order.
	Thread(ctx context.Context, ideaID domain.ID) ([]domain.Comment, error)

	// Add posts a comment. The response body is not used.
	Add(ctx context.Context, c domain.NewComment) error
}
