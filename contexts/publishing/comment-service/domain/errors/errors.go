package errors

import "errors"

var (
	ErrForbidden        = errors.New("forbidden")
	ErrContentRequired  = errors.New("comment content is required")
	ErrArticleNotFound  = errors.New("article not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentsDisabled = errors.New("comments are disabled for this article")
	ErrParentNotFound   = errors.New("parent comment not found")
	ErrParentMismatch   = errors.New("parent comment belongs to a different article")
)
