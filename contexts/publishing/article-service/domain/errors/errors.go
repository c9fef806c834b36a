package errors

import "errors"

var (
	ErrForbidden       = errors.New("forbidden")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid article status")
	ErrSectionNotFound = errors.New("section not found")
	ErrArticleNotFound = errors.New("article not found")
)
