package sched

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidProcessCount = errors.New("invalid number of processes")
	ErrNegativeValue       = errors.New("negative value")
	ErrInvalidQuantum      = errors.New("invalid time quantum")
	ErrMissingPriority     = errors.New("missing priority")
	ErrUnknownPolicy       = errors.New("unknown policy")
)
