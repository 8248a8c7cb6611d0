package arena

import "errors"

var (
	// ErrEmptyQueue is returned by Deploy when there is nothing to deploy. No state changes.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrUnknownUnit is returned when a key matches no catalog unit
	ErrUnknownUnit = errors.New("unknown unit")
)
