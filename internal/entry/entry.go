// Package entry resolves the webpack entry from the user's answers: one
// module path, or a set of named bundles each with its own location.
package entry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/prompt"
	"github.com/specialistvlad/packinit/internal/webpack"
)

// Question names used by the entry sub-flow.
const (
	MultipleEntries = "multipleEntries"
	SingularEntry   = "singularEntry"
)

// LocationQuestion returns the question name asking for the location of the
// named bundle.
func LocationQuestion(name string) string {
	return "entry_" + name
}

// Resolve runs the entry questions. It returns nil when the user asked for
// no explicit entry.
func Resolve(ctx context.Context, src prompt.Source, multiple bool) (*webpack.Entry, error) {
	if multiple {
		return resolveNamed(ctx, src)
	}
	return resolveSingle(ctx, src)
}

func resolveSingle(ctx context.Context, src prompt.Source) (*webpack.Entry, error) {
	logger := ctxlog.FromContext(ctx)

	answer, err := prompt.AskInput(ctx, src, prompt.Input(
		SingularEntry,
		"Which module will be the first to enter the application? [default: ./src/index]",
	))
	if err != nil {
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		logger.Debug("No entry given, leaving entry unset.")
		return nil, nil
	}
	return &webpack.Entry{Single: strings.ReplaceAll(answer, `"`, "'")}, nil
}

func resolveNamed(ctx context.Context, src prompt.Source) (*webpack.Entry, error) {
	logger := ctxlog.FromContext(ctx)

	q := prompt.Input(
		MultipleEntries,
		"Type the names you want for your modules (entry files), separated by comma [example: app,vendor]",
	)
	answer, err := prompt.AskInput(ctx, src, q)
	if err != nil {
		return nil, err
	}
	names := splitNames(answer)
	if len(names) == 0 {
		return nil, &prompt.AnswerError{Question: q, Got: answer, Reason: "at least one entry name is required"}
	}
	logger.Debug("Entry names parsed.", "names", names)

	e := &webpack.Entry{}
	for _, name := range names {
		loc, err := prompt.AskInput(ctx, src, prompt.Input(
			LocationQuestion(name),
			fmt.Sprintf("What is the location of %q? [example: ./src/%s]", name, name),
		))
		if err != nil {
			return nil, err
		}
		e.Named = append(e.Named, webpack.EntryPoint{Name: name, Location: normalizeLocation(name, loc)})
	}
	return e, nil
}

// splitNames splits a comma separated list, dropping blanks and repeats.
func splitNames(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// normalizeLocation applies the default location and the .js suffix to
// plain module paths. JavaScript expressions pass through untouched.
func normalizeLocation(name, loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		loc = "./src/" + name
	}
	if webpack.IsExpression(loc) {
		return loc
	}
	loc = strings.NewReplacer(`"`, "", "'", "").Replace(loc)
	if !strings.HasSuffix(loc, ".js") {
		loc += ".js"
	}
	return loc
}
