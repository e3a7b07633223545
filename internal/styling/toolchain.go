package styling

import (
	"errors"
	"fmt"
)

// ErrUnknownToolchain is returned for values outside the Toolchain enumeration.
var ErrUnknownToolchain = errors.New("unknown styling toolchain")

// Toolchain is the closed set of styling options offered by the flow.
type Toolchain int

const (
	None Toolchain = iota
	SASS
	LESS
	CSS
	PostCSS
)

// choices is the list order presented to the user.
var choices = []Toolchain{SASS, LESS, CSS, PostCSS, None}

// String returns the label shown in the choice list.
func (t Toolchain) String() string {
	switch t {
	case None:
		return "No"
	case SASS:
		return "SASS"
	case LESS:
		return "LESS"
	case CSS:
		return "CSS"
	case PostCSS:
		return "PostCSS"
	default:
		return fmt.Sprintf("Toolchain(%d)", int(t))
	}
}

// Valid reports whether t is a member of the enumeration.
func (t Toolchain) Valid() bool {
	return t >= None && t <= PostCSS
}

// Choices returns the choice labels in presentation order.
func Choices() []string {
	out := make([]string, len(choices))
	for i, t := range choices {
		out[i] = t.String()
	}
	return out
}

// Parse maps a choice label back to its Toolchain.
func Parse(label string) (Toolchain, error) {
	for _, t := range choices {
		if t.String() == label {
			return t, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownToolchain, label)
}
