package generator

import (
	"context"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/entry"
	"github.com/specialistvlad/packinit/internal/prompt"
	"github.com/specialistvlad/packinit/internal/styling"
	"github.com/specialistvlad/packinit/internal/webpack"
)

const chunkhashFilename = "[name].[chunkhash].js"

func (g *Generator) stepEntry(ctx context.Context) error {
	multiple, err := prompt.AskConfirm(ctx, g.src, prompt.Confirm(
		QuestionEntryType,
		"Will your application have multiple bundles?",
	))
	if err != nil {
		return err
	}
	e, err := entry.Resolve(ctx, g.src, multiple)
	if err != nil {
		return err
	}
	if !e.IsZero() {
		g.acc.SetEntry(*e)
	}
	return nil
}

func (g *Generator) stepOutput(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	dir, err := prompt.AskInput(ctx, g.src, prompt.Input(
		QuestionOutputType,
		"Which folder will your generated bundles be in? [default: dist]:",
	))
	if err != nil {
		return err
	}
	if dir != "" {
		g.state.OutputDir = dir
	}
	if g.state.UsingDefaults {
		logger.Debug("Using defaults, output left unset.")
		return nil
	}

	out := webpack.Output{Filename: chunkhashFilename}
	if !g.acc.HasEntry() {
		out.ChunkFilename = chunkhashFilename
	}
	out.Path = webpack.ResolvePath(g.state.OutputDir)
	g.acc.SetOutput(out)
	logger.Debug("Output configured.", "dir", g.state.OutputDir)
	return nil
}

func (g *Generator) stepProfile(ctx context.Context) error {
	if g.profileFixed {
		return &InvariantError{Detail: "profile fixed twice"}
	}
	g.state.IsProd = g.state.UsingDefaults
	g.profileFixed = true

	if g.state.IsProd {
		g.acc.SetProfile(webpack.Production, "prod", nil)
	} else {
		g.acc.SetProfile(webpack.Development, "dev", []webpack.Plugin{{Constructor: "UglifyJSPlugin"}})
	}
	ctxlog.FromContext(ctx).Debug("Profile fixed.", "mode", g.acc.Mode())
	return nil
}

func (g *Generator) stepBabel(ctx context.Context) error {
	ok, err := prompt.AskConfirm(ctx, g.src, prompt.Confirm(
		QuestionBabelConfirm,
		"Will you be using ES2015?",
	))
	if err != nil || !ok {
		return err
	}
	g.acc.AddRule(babelRule())
	g.acc.AddDependencies("babel-core", "babel-loader", "babel-preset-env")
	return nil
}

func babelRule() webpack.Rule {
	return webpack.Rule{
		Test:    `/\.js$/`,
		Include: []webpack.Expr{webpack.ResolvePath("src")},
		Loader:  "babel-loader",
		Options: &webpack.LoaderOptions{
			Plugins: "['syntax-dynamic-import']",
			Presets: "[['env', { modules: false }]]",
		},
	}
}

func (g *Generator) stepStyling(ctx context.Context) error {
	if err := g.requireProfile(); err != nil {
		return err
	}
	label, err := prompt.AskList(ctx, g.src, prompt.List(
		QuestionStylingType,
		"Will you use one of the below CSS solutions?",
		styling.Choices()...,
	))
	if err != nil {
		return err
	}
	t, err := styling.Parse(label)
	if err != nil {
		return &InvariantError{Detail: "styling choice outside the offered list", Err: err}
	}
	return g.resolveStyling(ctx, t)
}

func (g *Generator) resolveStyling(ctx context.Context, t styling.Toolchain) error {
	b, err := styling.Resolve(g.acc, t, g.state.IsProd)
	if err != nil {
		return &InvariantError{Detail: "styling resolver", Err: err}
	}
	g.state.Toolchain = t
	g.branch = b
	ctxlog.FromContext(ctx).Debug("Styling resolved.", "toolchain", t, "active", b.Active())
	return nil
}

func (g *Generator) stepExtract(ctx context.Context) error {
	if err := g.requireProfile(); err != nil {
		return err
	}
	if g.state.IsProd && g.branch.Active() {
		name, err := prompt.AskInput(ctx, g.src, prompt.Input(
			QuestionExtractPlugin,
			"If you want to bundle your CSS files, what will you name the bundle? (press enter to skip)",
		))
		if err != nil {
			return err
		}
		g.state.BundleName = name
	}
	g.branch.Finalize(g.acc, g.state.BundleName)
	return nil
}

func (g *Generator) stepOptimization(ctx context.Context) error {
	if err := g.requireProfile(); err != nil {
		return err
	}
	g.acc.AddTopScope(webpack.TooltipSplitChunks)
	g.acc.SetOptimization(webpack.Optimization{
		SplitChunks: &webpack.SplitChunks{
			Chunks:    "async",
			MinSize:   30000,
			MinChunks: 1,
			Name:      !g.state.IsProd,
			CacheGroups: map[string]webpack.CacheGroup{
				"vendors": {Test: `/[\\/]node_modules[\\/]/`, Priority: -10},
			},
		},
	})
	return nil
}

// applyInstallProfile prunes or documents the uglify plugin depending on
// the mode. It runs once, after the last step.
func (g *Generator) applyInstallProfile(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	if g.state.IsProd {
		if g.acc.RemoveDependency(uglifyPackage) {
			logger.Debug("Dropped development-only dependency.", "package", uglifyPackage)
		}
		return
	}
	g.acc.AddTopScope(
		webpack.TooltipUglify,
		"const UglifyJSPlugin = require('uglifyjs-webpack-plugin');",
		"\n",
	)
}
