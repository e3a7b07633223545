package webpack

// Comment blocks placed in the top scope next to the statements they explain.
const (
	TooltipUglify = `/*
 * UglifyJSPlugin minifies the bundles so they load faster and ship
 * less JavaScript.
 *
 * https://github.com/webpack-contrib/uglifyjs-webpack-plugin
 */`

	TooltipCSSPlugin = `/*
 * MiniCssExtractPlugin moves the CSS imported by your modules into a
 * separate file instead of inlining it into the JavaScript bundles.
 *
 * https://github.com/webpack-contrib/mini-css-extract-plugin
 */`

	TooltipPostCSS = `/*
 * PostCSS runs with autoprefixer and precss: vendor prefixes, variables,
 * mixins and future CSS syntax.
 *
 * https://github.com/postcss/postcss
 * https://github.com/postcss/autoprefixer
 * https://github.com/jonathantneal/precss
 */`

	TooltipSplitChunks = `/*
 * splitChunks is written out with webpack's own defaults. Modules shared
 * between chunks or coming from node_modules are split into separate
 * chunks. It is safe to remove this block.
 *
 * https://webpack.js.org/plugins/split-chunks-plugin/
 */`
)
