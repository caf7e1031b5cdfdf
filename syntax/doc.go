// Package syntax defines the navigable tree that the stamping engine queries.
//
// A [Tree] is an arena of [Node] values addressed by [NodeID]. Parent and
// child links are indices into the arena, so a tree is a flat slice that can
// be built incrementally by a front end and walked without pointer cycles.
//
// Only the structure the engine needs is represented: the root scope,
// namespaces, records (class, struct and union bodies) and variable
// declarations that carry an initializer. Each variable records the byte
// [Span] of its initializer literal, the literal's [LiteralKind], and the
// literal's current source text.
package syntax
