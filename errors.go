package strand

import "errors"

var (
	// Argument errors.
	ErrNilCallback = errors.New("strand: nil callback")

	// Lifecycle errors.
	ErrDisposed  = errors.New("strand: context disposed")
	ErrDisposing = errors.New("strand: disposal in progress")

	// Pump errors.
	ErrEmptyQueue = errors.New("strand: empty queue")

	// Installation errors.
	ErrAlreadyInstalled = errors.New("strand: already installed")
	ErrNotInstalled     = errors.New("strand: not installed")
	ErrPendingWork      = errors.New("strand: pending work in queue")
)
