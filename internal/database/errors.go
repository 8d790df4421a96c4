package database

import (
	"errors"
	"fmt"
)

var (
	ErrStoreClosed = errors.New("progress store is closed")
	ErrInvalidDay  = errors.New("day outside the study plan")
)

// OpError records which storage operation failed and on which key.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
