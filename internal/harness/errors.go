package harness

import "errors"

var (
	ErrTimeout     = errors.New("scenario timed out")
	ErrUnsupported = errors.New("not supported by engine")
	ErrNilElement  = errors.New("nil element")
	ErrQueueFull   = errors.New("dispatcher queue full")
	ErrClosed      = errors.New("dispatcher closed")
)
