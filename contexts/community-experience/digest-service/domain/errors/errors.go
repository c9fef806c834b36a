package errors

import "errors"

var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidFrequency  = errors.New("invalid digest frequency")
	ErrRecipientRequired = errors.New("recipient address is required")
	ErrMailDisabled      = errors.New("mail delivery is not configured")
)
