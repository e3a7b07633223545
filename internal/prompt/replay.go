package prompt

import (
	"context"
	"errors"
	"fmt"
)

// ErrExhausted is returned when a Replay runs out of answers.
var ErrExhausted = errors.New("replay: no answers left")

// Replay answers questions from a fixed sequence, in order.
type Replay struct {
	answers []any
	asked   []Question
}

// NewReplay creates a Replay over answers.
func NewReplay(answers ...any) *Replay {
	return &Replay{answers: answers}
}

// Ask returns the next answer in the sequence.
func (r *Replay) Ask(ctx context.Context, q Question) (any, error) {
	if len(r.asked) >= len(r.answers) {
		return nil, fmt.Errorf("%w (question %q)", ErrExhausted, q.Name)
	}
	v := r.answers[len(r.asked)]
	r.asked = append(r.asked, q)
	return v, nil
}

// Asked returns the questions posed so far.
func (r *Replay) Asked() []Question {
	return append([]Question(nil), r.asked...)
}

// Remaining returns the number of unused answers.
func (r *Replay) Remaining() int {
	return len(r.answers) - len(r.asked)
}
