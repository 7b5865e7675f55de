// Package gateway exposes the search engine and the reindex job over HTTP.
//
// The controller translates between transport shapes and the core API; the
// presenters are thin projections of ranked results into response views. The
// server wires both onto a chi router.
package gateway
