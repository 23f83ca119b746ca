package neomodel

import (
	"context"
	"fmt"

	"github.com/dan-poling/neomodel/schema/edge"
	"github.com/dan-poling/neomodel/schema/property"
	"github.com/dan-poling/neomodel/store"
)

// Registry maps type names to their schema entries. Types are
// registered once, at bootstrap, before any instance is constructed;
// the registry is not synchronized and must not be mutated
// concurrently.
type Registry struct {
	db    *DB
	types map[string]*Schema
}

// NewRegistry returns an empty registry bound to db.
func NewRegistry(db *DB) *Registry {
	return &Registry{db: db, types: make(map[string]*Schema)}
}

// Register declares a mapped type: its name, property descriptors and
// edge definitions. It rejects duplicate registration, duplicate
// property or edge names, and any builder-time declaration error, and
// obtains the type's dedicated index from the store. The returned
// schema is immutable.
func (r *Registry) Register(ctx context.Context, typeName string, props []Property, edges []Edge) (*Schema, error) {
	if typeName == "" {
		return nil, fmt.Errorf("neomodel: type name cannot be empty")
	}
	if _, ok := r.types[typeName]; ok {
		return nil, fmt.Errorf("neomodel: type %q already registered", typeName)
	}

	s := &Schema{
		registry: r,
		name:     typeName,
		props:    make(map[string]*property.Descriptor, len(props)),
		edges:    make(map[string]*edge.Descriptor, len(edges)),
	}
	for _, p := range props {
		desc := p.Descriptor()
		if desc.Err != nil {
			return nil, fmt.Errorf("neomodel: register %s: %w", typeName, desc.Err)
		}
		if _, ok := s.props[desc.Name]; ok {
			return nil, fmt.Errorf("neomodel: register %s: duplicate property %q", typeName, desc.Name)
		}
		s.props[desc.Name] = desc
		s.order = append(s.order, desc.Name)
	}
	for _, e := range edges {
		desc := e.Descriptor()
		if desc.Err != nil {
			return nil, fmt.Errorf("neomodel: register %s: %w", typeName, desc.Err)
		}
		if _, ok := s.edges[desc.Name]; ok {
			return nil, fmt.Errorf("neomodel: register %s: duplicate edge %q", typeName, desc.Name)
		}
		if _, ok := s.props[desc.Name]; ok {
			return nil, fmt.Errorf("neomodel: register %s: edge %q collides with a property", typeName, desc.Name)
		}
		s.edges[desc.Name] = desc
		s.edgeOrder = append(s.edgeOrder, desc.Name)
	}

	idx, err := r.db.Client().GetOrCreateIndex(ctx, typeName)
	if err != nil {
		return nil, fmt.Errorf("neomodel: register %s: get or create index: %w", typeName, err)
	}
	s.index = idx

	r.types[typeName] = s
	return s, nil
}

// Schema returns the schema entry for a registered type name.
func (r *Registry) Schema(typeName string) (*Schema, bool) {
	s, ok := r.types[typeName]
	return s, ok
}

// Schema is the immutable schema entry for one mapped type: its
// property descriptors, edge definitions and dedicated index.
type Schema struct {
	registry  *Registry
	name      string
	props     map[string]*property.Descriptor
	order     []string
	edges     map[string]*edge.Descriptor
	edgeOrder []string
	index     store.Index
}

// Name returns the type name.
func (s *Schema) Name() string { return s.name }

// Property returns the descriptor for a declared property name.
func (s *Schema) Property(name string) (*property.Descriptor, error) {
	desc, ok := s.props[name]
	if !ok {
		return nil, NewNoSuchPropertyError(s.name, name)
	}
	return desc, nil
}

// Properties returns the property descriptors in declaration order.
func (s *Schema) Properties() []*property.Descriptor {
	out := make([]*property.Descriptor, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.props[name])
	}
	return out
}

// Edge returns the descriptor for a declared edge name.
func (s *Schema) Edge(name string) (*edge.Descriptor, error) {
	desc, ok := s.edges[name]
	if !ok {
		return nil, fmt.Errorf("neomodel: %s has no edge %q", s.name, name)
	}
	return desc, nil
}

// Edges returns the edge descriptors in declaration order.
func (s *Schema) Edges() []*edge.Descriptor {
	out := make([]*edge.Descriptor, 0, len(s.edgeOrder))
	for _, name := range s.edgeOrder {
		out = append(out, s.edges[name])
	}
	return out
}

// target resolves an edge's target schema. Targets are referenced by
// name so mutually related types can register in any order; resolution
// happens at traversal time.
func (s *Schema) target(desc *edge.Descriptor) (*Schema, error) {
	ts, ok := s.registry.types[desc.Target]
	if !ok {
		return nil, fmt.Errorf("neomodel: edge %q: target type %q not registered", desc.Name, desc.Target)
	}
	return ts, nil
}

func (s *Schema) db() *DB { return s.registry.db }

func (s *Schema) client() store.Client { return s.registry.db.Client() }
