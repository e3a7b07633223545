package generator

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/packinit/internal/prompt"
)

var (
	// ErrInvalidInput marks an answer whose shape did not match its question.
	ErrInvalidInput = prompt.ErrInvalidAnswer
	// ErrInvariant marks internal state the flow can never legitimately reach.
	ErrInvariant = errors.New("invariant violated")
)

// StepError reports the step in which the flow stopped.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// InvariantError is a programming or configuration defect.
type InvariantError struct {
	Detail string
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrInvariant, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvariant, e.Detail)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
