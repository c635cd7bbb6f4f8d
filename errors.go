package bloomgo

import "fmt"

// ErrInvalidOption indicates a construction option outside its allowed
// range. Param names the offending parameter.
type ErrInvalidOption struct {
	Param string
	Value any
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid option %s: %v", e.Param, e.Value)
}

// ErrInvalidInput indicates input that is neither a scalar nor a collection
// (the zero Value). Kind names the received shape.
type ErrInvalidInput struct {
	Kind Kind
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input shape: %s", e.Kind)
}
