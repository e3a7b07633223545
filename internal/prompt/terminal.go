package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
	"github.com/specialistvlad/packinit/internal/ctxlog"
)

var (
	infoStyle = color.New(color.FgBlue)
	linkStyle = color.New(color.FgGreen, color.OpBold)
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Terminal asks questions with huh forms. On a TTY the forms are
// interactive; on any other input they run in accessible mode, one answer
// per line, re-asking until the line parses.
type Terminal struct {
	in         *bufio.Reader
	raw        io.Reader
	out        io.Writer
	accessible bool
}

// NewTerminal creates a Terminal reading answers from in and writing
// prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:         bufio.NewReader(in),
		raw:        in,
		out:        out,
		accessible: !isTTY(in),
	}
}

func isTTY(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Info prints an informational banner line with highlight appended in bold.
func (t *Terminal) Info(msg, highlight string) {
	line := infoStyle.Sprint("ℹ INFO ") + msg
	if highlight != "" {
		line += linkStyle.Sprint(highlight)
	}
	fmt.Fprintln(t.out, line)
}

// Ask runs a one-field form for q and returns its answer.
func (t *Terminal) Ask(ctx context.Context, q Question) (any, error) {
	logger := ctxlog.FromContext(ctx)

	var (
		field  huh.Field
		answer func() any
	)
	switch q.Kind {
	case KindConfirm:
		var v bool
		field = huh.NewConfirm().Title(q.Message).Affirmative("Yes").Negative("No").Value(&v)
		answer = func() any { return v }
	case KindList:
		var v string
		field = huh.NewSelect[string]().Title(q.Message).Options(huh.NewOptions(q.Choices...)...).Value(&v)
		answer = func() any { return v }
	case KindInput:
		var v string
		field = huh.NewInput().Title(q.Message).Value(&v)
		answer = func() any { return v }
	default:
		return nil, fmt.Errorf("question %q has unknown kind %s", q.Name, q.Kind)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithOutput(t.out).
		WithShowHelp(false).
		WithAccessible(t.accessible)
	if t.accessible {
		if _, err := t.in.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("reading answer for %q: %w", q.Name, err)
		}
		form = form.WithInput(&lineReader{r: t.in})
	} else {
		form = form.WithInput(t.raw)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, fmt.Errorf("%w at %q", ErrAborted, q.Name)
		}
		return nil, fmt.Errorf("reading answer for %q: %w", q.Name, err)
	}
	v := answer()
	logger.Debug("Terminal answer read.", "question", q.Name, "kind", q.Kind)
	return v, nil
}

// lineReader hands out at most one line per Read. Each accessible form
// scans its own input, so a larger read would swallow the answers to
// later questions.
type lineReader struct {
	r *bufio.Reader
}

func (l *lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}
