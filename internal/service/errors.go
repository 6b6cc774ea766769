package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every "referenced entity does not exist" error.
var ErrNotFound = errors.New("not found")

var (
	ErrSprintNotFound     = fmt.Errorf("sprint %w", ErrNotFound)
	ErrFeedbackNotFound   = fmt.Errorf("feedback %w", ErrNotFound)
	ErrConflict           = errors.New("concurrent modification, please retry")
	ErrNotActionItemOwner = errors.New("only the user who marked this action item can unmark it")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
