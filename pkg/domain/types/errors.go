package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrRunSuperseded means a newer Run was admitted for the same concurrency group
	ErrRunSuperseded = goerr.New("run superseded by a newer run")
	// ErrSlotBusy means the concurrency slot is held by another live Run
	ErrSlotBusy = goerr.New("concurrency slot is busy")

	ErrInvalidStateTransition = goerr.New("invalid run state transition")

	// Step errors keep their cause when wrapped with ErrXxx.Wrap(cause)
	ErrGenerator    = goerr.New("index generator failed", goerr.ID("generator"))
	ErrPushRejected = goerr.New("push to published branch rejected", goerr.ID("push_rejected"))
	ErrWorkspace    = goerr.New("workspace preparation failed", goerr.ID("workspace"))
)

var ErrNotFound = goerr.New("not found")
