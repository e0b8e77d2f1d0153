package domain

import "errors"

var (
	// ErrEmptyTitle indicates an idea draft without a title.
	ErrEmptyTitle = errors.New("idea title cannot be empty")

	// ErrEmptyDescription indicates an idea draft without a description.
	ErrEmptyDescription = errors.New("idea description cannot be empty")

	// ErrEmptyComment indicates a comment draft without content.
	ErrEmptyComment = errors.New("comment cannot be empty")
)
