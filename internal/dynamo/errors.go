package dynamo

import "errors"

// Domain errors for sampler operations.
var (
	// ErrInvalidArgument indicates a caller supplied an unusable parameter.
	ErrInvalidArgument = errors.New("dynamo: invalid argument")

	// ErrInvalidState indicates a vector with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")
)

// ArgumentError names the parameter that failed validation.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return "dynamo: invalid argument " + e.Name + ": " + e.Reason
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
