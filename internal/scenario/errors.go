package scenario

import "errors"

var (
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrInvalidScale    = errors.New("invalid scale factor")
	ErrInvalidLength   = errors.New("invalid track length")
	ErrInvalidSide     = errors.New("invalid dock side")
	ErrContradictory   = errors.New("contradictory constraints")
	ErrOutOfRange      = errors.New("value out of range")
)
