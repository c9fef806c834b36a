package errors

import "errors"

var (
	ErrForbidden            = errors.New("forbidden")
	ErrNotificationNotFound = errors.New("notification not found")
)
