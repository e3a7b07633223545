package styling

import (
	"fmt"

	"github.com/specialistvlad/packinit/internal/webpack"
)

const (
	// DefaultBundle is the extracted CSS filename when no bundle name is given.
	DefaultBundle = "style.css"

	extractPackage = "mini-css-extract-plugin"
	extractPlugin  = "MiniCssExtractPlugin"
	extractLoader  = "MiniCssExtractPlugin.loader"
	extractRequire = "const MiniCssExtractPlugin = require('mini-css-extract-plugin');"
)

const postcssPlugins webpack.Expr = `function () {
	return [
		precss,
		autoprefixer
	];
}`

// Branch is the resolved styling choice awaiting finalization.
type Branch struct {
	Toolchain Toolchain
	Prod      bool
	Test      webpack.Expr
	Use       []webpack.Loader
}

// Active reports whether the branch produces a rule.
func (b Branch) Active() bool {
	return b.Test != ""
}

func loader(name string) webpack.Loader {
	return webpack.Loader{Loader: name}
}

func sourceMapped(name string) webpack.Loader {
	return webpack.Loader{Loader: name, Options: &webpack.LoaderOptions{SourceMap: true}}
}

// Resolve records the toolchain's dependencies and preamble in acc and
// returns the pending branch. Loader chains differ per mode; the LESS chain
// never uses style-loader and development CSS puts sourceMap on
// style-loader.
func Resolve(acc *webpack.Accumulator, t Toolchain, prod bool) (Branch, error) {
	if !t.Valid() {
		return Branch{}, fmt.Errorf("%w: %s", ErrUnknownToolchain, t)
	}
	b := Branch{Toolchain: t, Prod: prod}

	switch t {
	case None:
		return b, nil

	case SASS:
		acc.AddDependencies("sass-loader", "node-sass", "style-loader", "css-loader")
		b.Test = `/\.(scss|css)$/`
		if prod {
			b.Use = []webpack.Loader{sourceMapped("css-loader"), sourceMapped("sass-loader")}
		} else {
			b.Use = []webpack.Loader{loader("style-loader"), loader("css-loader"), loader("sass-loader")}
		}

	case LESS:
		acc.AddDependencies("less-loader", "less", "style-loader", "css-loader")
		b.Test = `/\.(less|css)$/`
		b.Use = []webpack.Loader{sourceMapped("css-loader"), sourceMapped("less-loader")}

	case PostCSS:
		acc.AddTopScope(
			webpack.TooltipPostCSS,
			"const autoprefixer = require('autoprefixer');",
			"const precss = require('precss');",
			"\n",
		)
		acc.AddDependencies("style-loader", "css-loader", "postcss-loader", "precss", "autoprefixer")
		b.Test = `/\.css$/`
		css := webpack.Loader{
			Loader:  "css-loader",
			Options: &webpack.LoaderOptions{SourceMap: true, ImportLoaders: 1},
		}
		post := webpack.Loader{
			Loader:  "postcss-loader",
			Options: &webpack.LoaderOptions{Plugins: postcssPlugins},
		}
		if prod {
			b.Use = []webpack.Loader{css, post}
		} else {
			b.Use = []webpack.Loader{loader("style-loader"), css, post}
		}

	case CSS:
		acc.AddDependencies("style-loader", "css-loader")
		b.Test = `/\.css$/`
		if prod {
			b.Use = []webpack.Loader{sourceMapped("css-loader")}
		} else {
			b.Use = []webpack.Loader{sourceMapped("style-loader"), loader("css-loader")}
		}

	}
	return b, nil
}

// BundleFilename returns the extracted CSS filename for a user-supplied
// bundle base name.
func BundleFilename(base string) string {
	if base == "" {
		return DefaultBundle
	}
	return base + ".[chunkhash].css"
}

// Finalize appends the completed rule to acc. In production the extraction
// loader is prepended and MiniCssExtractPlugin is registered with the
// bundle filename derived from bundle.
func (b Branch) Finalize(acc *webpack.Accumulator, bundle string) {
	if !b.Active() {
		return
	}
	use := append([]webpack.Loader{}, b.Use...)

	if b.Prod {
		acc.AddTopScope(webpack.TooltipCSSPlugin)
		acc.AddDependencies(extractPackage)
		acc.AddPlugin(webpack.Plugin{Constructor: extractPlugin, Filename: BundleFilename(bundle)})
		use = append([]webpack.Loader{{Loader: extractLoader, Ref: true}}, use...)
		acc.AddRule(webpack.Rule{Test: b.Test, Use: use})
		acc.AddTopScope(extractRequire, "\n")
		return
	}
	acc.AddRule(webpack.Rule{Test: b.Test, Use: use})
}
