package errors

import "errors"

var (
	ErrForbidden       = errors.New("forbidden")
	ErrTitleRequired   = errors.New("title is required")
	ErrSectionNotFound = errors.New("section not found")
	ErrSectionExists   = errors.New("section already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrGuestGrant      = errors.New("guests cannot hold editor grants")
	ErrDuplicateGrant  = errors.New("grant already exists")
	ErrGrantNotFound   = errors.New("grant not found")
)
