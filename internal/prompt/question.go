package prompt

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Kind is the shape of answer a question expects.
type Kind int

const (
	KindConfirm Kind = iota + 1
	KindInput
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindConfirm:
		return "confirm"
	case KindInput:
		return "input"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Question is one prompt posed to a Source.
type Question struct {
	Kind    Kind
	Name    string
	Message string
	Choices []string
}

// Confirm builds a yes/no question.
func Confirm(name, message string) Question {
	return Question{Kind: KindConfirm, Name: name, Message: message}
}

// Input builds a free-text question. A blank answer is valid.
func Input(name, message string) Question {
	return Question{Kind: KindInput, Name: name, Message: message}
}

// List builds a single-choice question.
func List(name, message string, choices ...string) Question {
	return Question{Kind: KindList, Name: name, Message: message, Choices: choices}
}

// Source supplies one answer per question. Answers are bool for confirm
// questions and string for input and list questions.
type Source interface {
	Ask(ctx context.Context, q Question) (any, error)
}

// ErrInvalidAnswer marks an answer whose shape does not match its question.
var ErrInvalidAnswer = errors.New("invalid answer")

// AnswerError describes a rejected answer.
type AnswerError struct {
	Question Question
	Got      any
	Reason   string
}

func (e *AnswerError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid answer for %q: %s", e.Question.Name, e.Reason)
	}
	return fmt.Sprintf("invalid answer for %s question %q: got %T", e.Question.Kind, e.Question.Name, e.Got)
}

// Is matches ErrInvalidAnswer.
func (e *AnswerError) Is(target error) bool {
	return target == ErrInvalidAnswer
}

// AskConfirm poses a confirm question and requires a bool answer.
func AskConfirm(ctx context.Context, src Source, q Question) (bool, error) {
	v, err := src.Ask(ctx, q)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &AnswerError{Question: q, Got: v}
	}
	return b, nil
}

// AskInput poses a free-text question and requires a string answer.
func AskInput(ctx context.Context, src Source, q Question) (string, error) {
	v, err := src.Ask(ctx, q)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &AnswerError{Question: q, Got: v}
	}
	return s, nil
}

// AskList poses a single-choice question and requires one of its choices.
func AskList(ctx context.Context, src Source, q Question) (string, error) {
	s, err := AskInput(ctx, src, q)
	if err != nil {
		return "", err
	}
	if !slices.Contains(q.Choices, s) {
		return "", &AnswerError{Question: q, Got: s, Reason: fmt.Sprintf("%q is not one of %v", s, q.Choices)}
	}
	return s, nil
}
