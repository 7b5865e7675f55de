// Package embedding defines the item-vector embedding contract and a
// deterministic reference embedder.
//
// The ranking engine's own query and tag vectors always come from the
// deterministic token embedding in the analysis package. This package exists
// for the offline path: producing richer per-item vectors (catalog field
// `vector`) ahead of time, typically from an OpenAI-compatible service via
// the openai subpackage.
package embedding
