package util

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("already exists")
	ErrInvalidReference = errors.New("invalid reference")
	ErrQuizPrivate      = errors.New("quiz is private")
	ErrNotInClass       = errors.New("not in class for assignment")
	ErrAttemptFinished  = errors.New("attempt already finished")
	ErrEmptyUpdate      = errors.New("at least one field must be provided")
)

// Per-entity 404s; each wraps ErrNotFound so one errors.Is covers them all.
var (
	ErrUserNotFound       = notFound("user not found")
	ErrQuizNotFound       = notFound("quiz not found")
	ErrQuestionNotFound   = notFound("question not found")
	ErrCommentNotFound    = notFound("comment not found")
	ErrClassNotFound      = notFound("class not found")
	ErrAssignmentNotFound = notFound("assignment not found")
	ErrAttemptNotFound    = notFound("attempt not found")
	ErrAnswerNotFound     = notFound("answer not found")
)

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(msg string) error { return &notFoundError{msg} }

// ValidationError reports the first failing field of a payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
