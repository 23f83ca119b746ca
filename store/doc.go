// Package store defines the graph store boundary for neomodel.
//
// The mapping layer never speaks a wire protocol itself; every store
// round-trip goes through the Client interface, which exposes the node,
// relationship and secondary-index primitives the engine needs.
//
// # Implementations
//
// Two implementations ship with the module:
//
//   - store/neo: Cypher over the Bolt driver, for a real Neo4j server
//   - store/mock: an in-memory store for tests and local development
//
// # Atomicity
//
// A Client promises atomicity for single operations only. The one
// conditional primitive is Index.InsertIfAbsent, which either becomes
// the sole entry for its (key, value) pair or reports a conflict and
// changes nothing; the engine builds its uniqueness guarantee on it.
// Multi-operation sequences (create node, attach category edge, update
// indexes) are not transactional.
//
// # Identity
//
// Nodes and relationships are identified by opaque store-assigned string
// identities. A Node or Relationship record is a snapshot; it does not
// track later mutations.
package store
