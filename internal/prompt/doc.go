// Package prompt defines the answer source boundary of the init flow: the
// three question shapes (confirm, free text, single choice) and the sources
// that answer them.
//
// A Source returns one raw answer per question. The typed helpers
// AskConfirm, AskInput and AskList check the answer's shape and fail with
// an *AnswerError wrapping ErrInvalidAnswer instead of coercing it.
//
// Three sources are provided:
//
//   - Terminal reads answers interactively from a reader.
//   - File answers from an HCL file of name = value attributes.
//   - Replay answers from a fixed in-order sequence, for tests and scripts.
package prompt
