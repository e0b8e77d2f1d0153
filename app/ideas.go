package app

import (
	"context"

	"github.com/CrestNiraj12/ideaboard/domain"
)

// IdeaService reads and mutates ideas on the board backend.
type IdeaService interface {
	// List returns ideas for the given filter/sort, in server order.
	List(ctx context.Context, q domain.ListQuery) ([]domain.Idea, error)

	// Create submits a new idea. The response body is not used.
	Create(ctx context.Context, idea domain.NewIdea) error

	// Upvote records one vote for the idea.
	Upvote(ctx context.Context, id domain.ID) error
}
