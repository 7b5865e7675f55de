// Package analysis provides the shared text primitives used by both the
// ranking engine and the indexing pipeline: tokenization, the deterministic
// token embedding, vector math, and Levenshtein edit distance.
//
// The embedding here is intentionally a toy: each token maps to a fixed
// three-dimensional vector derived from its character codes. It exists so
// that semantic scores are reproducible without a model dependency, and its
// exact arithmetic is part of the engine's contract.
package analysis
