// Package app contains the core application logic. It wires the answer
// source, the init flow, the document store, the config emitter and the
// installer together behind one App, decoupled from the CLI entrypoint.
package app
