// Package edge provides fluent builders for declaring relationships
// between neomodel mapped types.
//
// # Directions
//
// An edge is declared with a manager name, the relationship type stored
// in the graph, and the target type name:
//
//	// Person -[IS_FROM]-> Country
//	edge.To("country", "IS_FROM", "Country")
//
//	// Country <-[IS_FROM]- Person
//	edge.From("inhabitants", "IS_FROM", "Person")
//
//	// traversed in either direction
//	edge.Both("friends", "FRIEND", "Person")
//
// The direction is relative to the type the edge is declared on. A
// bidirectional pairing is two declarations, To on one type and From on
// the other, sharing the relationship type.
//
// # Managers
//
// At node construction each declared edge becomes one relationship
// manager on the node, addressed by the edge name. The manager caches
// related nodes and mutates the underlying store edges; see the root
// package.
//
// Target types are referenced by name and resolved when the edge is
// first traversed, so mutually related types can be registered in any
// order.
package edge
