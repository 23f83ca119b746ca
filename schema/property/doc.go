// Package property provides fluent builders for declaring the typed
// properties of a neomodel mapped type.
//
// # Property Kinds
//
// One builder exists per value kind:
//
//	property.String("name")
//	property.Int("age")
//	property.Float("score")
//	property.Bool("active")
//
// # Indexing
//
// A property can participate in its type's secondary index in one of
// two ways:
//
//	// Indexed: multiple nodes may share a value
//	property.String("city").Indexed()
//
//	// Unique: at most one node per value, enforced at save time
//	property.String("email").Unique()
//
// Unique and Indexed are mutually exclusive, as are Unique and Blank;
// declaring both records an error on the descriptor which surfaces when
// the type is registered.
//
// # Validation
//
// Descriptor.Validate checks the runtime kind of a value and performs
// no coercion. It runs at node construction, on every assignment, and
// on every query constraint, so a mapped node never holds a value that
// fails its descriptor.
package property
