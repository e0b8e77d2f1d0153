package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IdeaDraft holds the raw text of the idea creation form.
// Tags is the comma separated input, e.g. "AI, Productivity".
type IdeaDraft struct {
	Title       string
	Description string
	Author      string
	Link        string
	Tags        string
}

type ideaRules struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

// Build validates the draft and returns the creation payload.
// Title and description are sent as typed; blank optional fields are dropped.
func (d IdeaDraft) Build() (NewIdea, error) {
	rules := ideaRules{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
	}
	if err := validate.Struct(rules); err != nil {
		return NewIdea{}, ruleError(err, map[string]error{
			"Title":       ErrEmptyTitle,
			"Description": ErrEmptyDescription,
		})
	}
	return NewIdea{
		Title:       d.Title,
		Description: d.Description,
		Author:      optional(d.Author),
		Link:        optional(d.Link),
		Tags:        ParseTags(d.Tags),
	}, nil
}

// CommentDraft holds the raw text of the comment form.
type CommentDraft struct {
	Content string
	Author  string
}

type commentRules struct {
	Content string `validate:"required"`
}

// Build validates the draft and returns the comment payload for ideaID.
// Author follows the same convention as ideas: omitted when blank.
func (d CommentDraft) Build(ideaID ID) (NewComment, error) {
	if err := validate.Struct(commentRules{Content: strings.TrimSpace(d.Content)}); err != nil {
		return NewComment{}, ruleError(err, map[string]error{"Content": ErrEmptyComment})
	}
	return NewComment{
		IdeaID:  ideaID,
		Content: d.Content,
		Author:  optional(d.Author),
	}, nil
}

// ParseTags splits comma separated tags, trimming each and dropping empties.
// "AI, , Productivity ,ok" yields [AI Productivity ok].
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}

func optional(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func ruleError(err error, byField map[string]error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	if mapped, ok := byField[fieldErrs[0].Field()]; ok {
		return mapped
	}
	return err
}
