// Package webpack models the webpack configuration document built by the
// guided init flow and owns the only write path into it.
//
// # Document
//
// A Document holds three accumulators that grow side by side:
//
//   - Options: the structured webpack options (entry, output, mode, module
//     rules, plugins, optimization).
//   - TopScope: preamble statements emitted before the generated
//     configuration body. Append-only; order reflects usage order.
//   - Dependencies: npm packages to install. Ordered, duplicate-free.
//
// # Accumulator
//
// The Accumulator wraps a Document while it is being built. Decision steps
// mutate it through append-style methods only; the single permitted removal
// is RemoveDependency. Finalize hands out an independent copy and seals the
// accumulator: any write after that is a programming error and panics.
//
// # Expressions
//
// Values that must reach the generated JavaScript verbatim (regular
// expression matchers, path.resolve calls, plugin constructors, inline
// functions) are typed as Expr. Plain strings are quoted by the emitter.
package webpack
