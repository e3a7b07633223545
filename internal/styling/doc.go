// Package styling maps the chosen styling toolchain to a module rule, the
// packages it needs and the preamble statements it references.
//
// Resolution happens in two phases. Resolve writes the toolchain's
// dependencies and preamble into the accumulator and returns a Branch
// holding the pending rule. Branch.Finalize later completes the rule: in
// production it front-loads the CSS extraction loader and registers
// MiniCssExtractPlugin before appending the rule; in development the rule
// is appended as is. The None toolchain yields an inactive Branch and both
// phases are no-ops.
package styling
