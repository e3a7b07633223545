package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrNoAnswer is returned when an answer file has no attribute for a question.
var ErrNoAnswer = errors.New("no answer recorded")

// File answers questions from the top-level attributes of an HCL file,
// matched by question name:
//
//	entryType     = false
//	singularEntry = "./src/index"
//	stylingType   = "SASS"
type File struct {
	name  string
	attrs hcl.Attributes
}

// LoadFile parses the answer file at path.
func LoadFile(path string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse answer file %s: %w", path, diags)
	}
	return fromBody(path, f.Body)
}

// ParseFile parses answer file source held in memory.
func ParseFile(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse answer file %s: %w", filename, diags)
	}
	return fromBody(filename, f.Body)
}

func fromBody(name string, body hcl.Body) (*File, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("answer file %s must only contain attributes: %w", name, diags)
	}
	return &File{name: name, attrs: attrs}, nil
}

// Ask evaluates the attribute named after q. Booleans and strings come back
// as bool and string; any other value is returned as its cty.Value so the
// caller rejects the shape.
func (f *File) Ask(ctx context.Context, q Question) (any, error) {
	logger := ctxlog.FromContext(ctx)

	attr, ok := f.attrs[q.Name]
	if !ok {
		return nil, fmt.Errorf("%w for %q in %s", ErrNoAnswer, q.Name, f.name)
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate answer %q: %w", q.Name, diags)
	}
	logger.Debug("Answer read from file.", "question", q.Name, "type", val.Type().FriendlyName())

	if val.IsNull() || !val.IsKnown() {
		return val, nil
	}
	switch val.Type() {
	case cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(val, &b); err != nil {
			return nil, err
		}
		return b, nil
	case cty.String:
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return val, nil
	}
}

// Has reports whether the file answers the named question.
func (f *File) Has(name string) bool {
	_, ok := f.attrs[name]
	return ok
}
