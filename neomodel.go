// Package neomodel is an object-graph mapper for Neo4j-style graph
// stores: typed, schema-validated node objects backed by a remote
// store, with per-type secondary indexes and cached, direction-aware
// relationship managers kept consistent with the store.
//
// # Defining types
//
// A mapped type is registered once, at bootstrap, with its property
// descriptors and edge declarations:
//
//	db := neomodel.Open(client)
//	reg := neomodel.NewRegistry(db)
//
//	country, err := reg.Register(ctx, "Country",
//	    []neomodel.Property{
//	        property.String("code").Unique(),
//	    },
//	    nil,
//	)
//
//	person, err := reg.Register(ctx, "Person",
//	    []neomodel.Property{
//	        property.String("name").Unique(),
//	        property.Int("age").Indexed(),
//	    },
//	    []neomodel.Edge{
//	        edge.To("country", "IS_FROM", "Country"),
//	    },
//	)
//
// # Working with nodes
//
// Instances are constructed transient, validated against the schema,
// and persisted with Save:
//
//	jim, err := person.New(map[string]any{"name": "jim", "age": 3})
//	if err := jim.Save(ctx); err != nil { ... }
//
//	uk, _ := country.New(map[string]any{"code": "GB"})
//	_ = uk.Save(ctx)
//
//	rel, _ := jim.Relationship("country")
//	_ = rel.Relate(ctx, uk)
//
//	found, err := person.Get(ctx, map[string]any{"name": "jim"})
//
// # Consistency
//
// Saving a transient node creates the store node, links it to its
// type's category anchor, and updates the type's index; a uniqueness
// conflict rolls the node and its category edge back before the error
// propagates. Relationship managers cache related nodes by remote
// identity and invalidate entries only through explicit Relate and
// Unrelate. See the store package for the atomicity the engine assumes
// of its backend.
//
// The engine performs no retries and imposes no timeouts; pass a
// deadline through ctx where bounded latency matters.
package neomodel

import (
	"github.com/dan-poling/neomodel/schema/edge"
	"github.com/dan-poling/neomodel/schema/property"
)

// Property is implemented by the schema/property builders; a registered
// type's properties are declared as a slice of them.
type Property interface {
	Descriptor() *property.Descriptor
}

// Edge is implemented by the schema/edge builders; a registered type's
// relationships are declared as a slice of them.
type Edge interface {
	Descriptor() *edge.Descriptor
}
