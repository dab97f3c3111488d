// Package scalartypes holds the canonical definitions of the four scalar
// representations and the type constraints over them.
//
// The public surface of this module is the root package, which re-exports
// everything here by alias. Keeping the canonical definitions internal lets
// tooling packages depend on the carrier types without importing the public
// capability interfaces.
package scalartypes
