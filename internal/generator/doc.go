// Package generator runs the guided init flow: a fixed, ordered list of
// decision steps that turn answers from a prompt.Source into a finalized
// webpack.Document.
//
// # Step order
//
//  1. entry: multiple bundles? then the entry sub-flow.
//  2. output: output folder; skipped entirely when using defaults.
//  3. profile: production iff using defaults; fixes mode and plugins.
//  4. babel: optional ES2015 transpilation rule.
//  5. styling: toolchain choice, resolved by package styling.
//  6. extract: CSS bundle name (production with a toolchain only), then the
//     styling rule is completed.
//  7. optimization: splitChunks block, always.
//
// After the last step the install profile is applied (the uglify plugin
// package is dropped in production, its preamble added in development) and
// the document is finalized. Steps never run concurrently and the first
// failing step stops the flow.
package generator
