package errors

import "errors"

var (
	ErrNoHomeworkName = errors.New("homework record has no homework_name")
	ErrUnknownStatus  = errors.New("undocumented homework status")
)
