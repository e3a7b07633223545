package generator

import (
	"context"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/prompt"
	"github.com/specialistvlad/packinit/internal/styling"
	"github.com/specialistvlad/packinit/internal/webpack"
)

// Question names posed directly by the decision steps.
const (
	QuestionEntryType     = "entryType"
	QuestionOutputType    = "outputType"
	QuestionBabelConfirm  = "babelConfirm"
	QuestionStylingType   = "stylingType"
	QuestionExtractPlugin = "extractPlugin"
)

// DefaultOutputDir is used when the output folder question is left blank.
const DefaultOutputDir = "dist"

const uglifyPackage = "uglifyjs-webpack-plugin"

// BaselineDependencies are installed by every run, before profile pruning.
var BaselineDependencies = []string{
	"webpack",
	"webpack-cli",
	uglifyPackage,
	"babel-plugin-syntax-dynamic-import",
}

// Options configures a Generator.
type Options struct {
	// UsingDefaults skips the output block and selects production mode.
	UsingDefaults bool
}

// State is the set of decisions derived from answers during a run.
type State struct {
	UsingDefaults bool
	IsProd        bool
	OutputDir     string
	Toolchain     styling.Toolchain
	BundleName    string
}

// Result is handed to the store and installer once the flow is done.
type Result struct {
	Document webpack.Document
	State    State
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// Generator owns one run of the decision steps.
type Generator struct {
	src    prompt.Source
	acc    *webpack.Accumulator
	state  State
	branch styling.Branch

	profileFixed bool
	started      bool
}

// New creates a Generator answering its questions from src.
func New(src prompt.Source, opts Options) *Generator {
	return &Generator{
		src:   src,
		acc:   webpack.New(BaselineDependencies...),
		state: State{UsingDefaults: opts.UsingDefaults, OutputDir: DefaultOutputDir},
	}
}

// Run executes every step in order and returns the finalized document. It
// returns exactly once; a Generator cannot be run twice.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if g.started {
		return nil, &InvariantError{Detail: "generator already ran"}
	}
	g.started = true

	logger.Debug("Init flow started.", "using_defaults", g.state.UsingDefaults)
	g.acc.AddTopScope(
		"const webpack = require('webpack')",
		"const path = require('path')",
		"\n",
	)

	for _, s := range g.steps() {
		stepCtx := ctxlog.WithStep(ctx, s.name)
		ctxlog.FromContext(stepCtx).Debug("Running decision step.")
		if err := s.run(stepCtx); err != nil {
			return nil, &StepError{Step: s.name, Err: err}
		}
	}

	g.applyInstallProfile(ctx)
	doc := g.acc.Finalize()

	logger.Info("Configuration finalized.",
		"config_name", doc.ConfigName,
		"rules", len(doc.Options.Module.Rules),
		"plugins", len(doc.Options.Plugins),
		"dependencies", len(doc.Dependencies),
	)
	return &Result{Document: doc, State: g.state}, nil
}

func (g *Generator) steps() []step {
	return []step{
		{name: "entry", run: g.stepEntry},
		{name: "output", run: g.stepOutput},
		{name: "profile", run: g.stepProfile},
		{name: "babel", run: g.stepBabel},
		{name: "styling", run: g.stepStyling},
		{name: "extract", run: g.stepExtract},
		{name: "optimization", run: g.stepOptimization},
	}
}

// requireProfile guards steps that branch on IsProd.
func (g *Generator) requireProfile() error {
	if !g.profileFixed {
		return &InvariantError{Detail: "production flag read before the profile step"}
	}
	return nil
}
