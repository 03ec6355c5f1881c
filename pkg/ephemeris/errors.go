package ephemeris

import (
	"errors"
	"fmt"
)

// ErrUnknownBody is returned for a body outside the supported set.
var ErrUnknownBody = errors.New("unknown body")

// CalculationError reports a failed position calculation. It carries the
// body and the operation that failed and unwraps to the underlying
// cause, so callers can match sentinel errors with errors.Is.
type CalculationError struct {
	Body Body
	Op   string
	Err  error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("ephemeris: %s %s: %v", e.Op, e.Body, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }

func calcErr(op string, b Body, err error) error {
	return &CalculationError{Body: b, Op: op, Err: err}
}
