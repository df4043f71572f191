package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrToolParse       = errors.New("tool call could not be parsed")
	ErrIterationBudget = errors.New("agent loop iteration budget exhausted")
	ErrValidation      = errors.New("validation failed")
)
