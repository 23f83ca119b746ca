package neomodel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dan-poling/neomodel/query"
	"github.com/dan-poling/neomodel/store"
)

// Node is a typed, schema-validated object representing one graph-store
// node. A node starts transient (no remote identity), becomes persisted
// on a successful Save, and returns to the transient state on Delete,
// after which it must not be reused for store operations.
//
// Nodes are not safe for concurrent use.
type Node struct {
	schema *Schema
	id     string // remote identity; empty while transient
	props  map[string]any
	rels   map[string]*RelationshipManager
}

// New constructs a transient node of this type. Every key must be a
// declared property and every value must pass its descriptor's
// validation; on failure nothing is constructed. One relationship
// manager is built per declared edge.
func (s *Schema) New(props map[string]any) (*Node, error) {
	n := &Node{
		schema: s,
		props:  make(map[string]any, len(props)),
		rels:   make(map[string]*RelationshipManager, len(s.edges)),
	}
	for name, v := range props {
		if err := n.Set(name, v); err != nil {
			return nil, err
		}
	}
	for _, name := range s.edgeOrder {
		n.rels[name] = newRelationshipManager(s.edges[name], n)
	}
	return n, nil
}

// hydrate builds a persisted node from a store record, validating the
// record's properties against the schema.
func (s *Schema) hydrate(rec store.Node) (*Node, error) {
	n, err := s.New(rec.Properties)
	if err != nil {
		return nil, err
	}
	n.id = rec.ID
	return n, nil
}

// Type returns the mapped type name.
func (n *Node) Type() string { return n.schema.name }

// Schema returns the node's schema entry.
func (n *Node) Schema() *Schema { return n.schema }

// ID returns the remote identity, or the empty string while the node is
// transient or deleted.
func (n *Node) ID() string { return n.id }

// Persisted reports whether the node has a remote identity.
func (n *Node) Persisted() bool { return n.id != "" }

// Set assigns a property value, re-running descriptor validation. A
// failed validation leaves the node unchanged.
func (n *Node) Set(name string, v any) error {
	desc, err := n.schema.Property(name)
	if err != nil {
		return err
	}
	if err := desc.Validate(v); err != nil {
		return err
	}
	n.props[name] = v
	return nil
}

// Get returns a property value and whether it is set.
func (n *Node) Get(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

// Properties returns a copy of the node's current property values.
func (n *Node) Properties() map[string]any {
	out := make(map[string]any, len(n.props))
	for k, v := range n.props {
		out[k] = v
	}
	return out
}

// Relationship returns the manager for a declared edge name.
func (n *Node) Relationship(name string) (*RelationshipManager, error) {
	m, ok := n.rels[name]
	if !ok {
		return nil, fmt.Errorf("neomodel: %s has no edge %q", n.schema.name, name)
	}
	return m, nil
}

// Save persists the node.
//
// A transient node is created in the store with its current properties
// and linked to the type's category anchor, then its indexed properties
// are inserted into the type's index. If a uniquely indexed value
// conflicts, the entries inserted ahead of the conflict, the
// just-created node and its category edge are all removed, and Save
// returns a NotUniqueError with the node left transient.
//
// A persisted node has all its store properties overwritten, its index
// entries removed and re-inserted. A uniqueness conflict at that point
// is surfaced as a NotUniqueError without rollback: the old index
// entries are already gone and the properties already overwritten.
// Recovery is left to the caller.
func (n *Node) Save(ctx context.Context) error {
	if n.Persisted() {
		return n.update(ctx)
	}
	return n.create(ctx)
}

func (n *Node) create(ctx context.Context) error {
	anchor, err := n.schema.db().Category(ctx, n.schema.name)
	if err != nil {
		return fmt.Errorf("neomodel: save %s: category anchor: %w", n.schema.name, err)
	}
	rec, catEdge, err := n.schema.client().CreateNode(ctx, n.Properties(), anchor, categoryRelType(n.schema.name))
	if err != nil {
		return fmt.Errorf("neomodel: save %s: create node: %w", n.schema.name, err)
	}
	n.id = rec.ID

	if err := n.updateIndex(ctx); err != nil {
		// Unwind before surfacing the conflict: entries inserted ahead
		// of the conflicting property would otherwise keep resolving
		// queries to the removed node.
		if derr := n.schema.index.Remove(ctx, n.id); derr != nil {
			n.id = ""
			return errors.Join(err, fmt.Errorf("neomodel: save %s: rollback: %w", n.schema.name, derr))
		}
		derr := n.schema.client().Delete(ctx, catEdge.Ref(), rec.Ref())
		n.id = ""
		if derr != nil {
			return errors.Join(err, fmt.Errorf("neomodel: save %s: rollback: %w", n.schema.name, derr))
		}
		return err
	}
	return nil
}

func (n *Node) update(ctx context.Context) error {
	if err := n.schema.client().SetProperties(ctx, n.id, n.Properties()); err != nil {
		return fmt.Errorf("neomodel: save %s: set properties: %w", n.schema.name, err)
	}
	if err := n.schema.index.Remove(ctx, n.id); err != nil {
		return fmt.Errorf("neomodel: save %s: clear index entries: %w", n.schema.name, err)
	}
	return n.updateIndex(ctx)
}

// updateIndex inserts the node's indexed property values into the
// type's index, conditionally for unique properties. The conditional
// insert is the sole enforcement point for uniqueness.
func (n *Node) updateIndex(ctx context.Context) error {
	for _, name := range n.schema.order {
		v, ok := n.props[name]
		if !ok {
			continue
		}
		desc := n.schema.props[name]
		value := query.Format(v)
		switch {
		case desc.Unique:
			inserted, err := n.schema.index.InsertIfAbsent(ctx, name, value, n.id)
			if err != nil {
				return fmt.Errorf("neomodel: save %s: index %q: %w", n.schema.name, name, err)
			}
			if !inserted {
				return NewNotUniqueError(n.schema.name, name, value)
			}
		case desc.Index:
			if err := n.schema.index.Insert(ctx, name, value, n.id); err != nil {
				return fmt.Errorf("neomodel: save %s: index %q: %w", n.schema.name, name, err)
			}
		}
	}
	return nil
}

// Refresh reloads the node's property values from the store, replacing
// the local values after validating them against the schema.
func (n *Node) Refresh(ctx context.Context) error {
	if !n.Persisted() {
		return NewNodeNotPersistedError(n.schema.name, "refresh")
	}
	props, err := n.schema.client().GetProperties(ctx, n.id)
	if err != nil {
		return fmt.Errorf("neomodel: refresh %s: %w", n.schema.name, err)
	}
	fresh := make(map[string]any, len(props))
	for name, v := range props {
		desc, err := n.schema.Property(name)
		if err != nil {
			return err
		}
		if err := desc.Validate(v); err != nil {
			return err
		}
		fresh[name] = v
	}
	n.props = fresh
	return nil
}

// Delete removes the node's index entries, every relationship incident
// to the node and the node itself from the store, then clears the
// remote identity. Clearing the entries frees the node's unique values
// for reuse. The node must not be reused afterwards; a second Delete
// fails with NodeNotPersistedError.
func (n *Node) Delete(ctx context.Context) error {
	if !n.Persisted() {
		return NewNodeNotPersistedError(n.schema.name, "delete")
	}
	if err := n.schema.index.Remove(ctx, n.id); err != nil {
		return fmt.Errorf("neomodel: delete %s: clear index entries: %w", n.schema.name, err)
	}
	rels, err := n.schema.client().Relationships(ctx, n.id)
	if err != nil {
		return fmt.Errorf("neomodel: delete %s: list relationships: %w", n.schema.name, err)
	}
	refs := make([]store.Ref, 0, len(rels)+1)
	for _, r := range rels {
		refs = append(refs, r.Ref())
	}
	refs = append(refs, store.Ref{ID: n.id, Kind: store.KindNode})
	if err := n.schema.client().Delete(ctx, refs...); err != nil {
		return fmt.Errorf("neomodel: delete %s: %w", n.schema.name, err)
	}
	n.id = ""
	return nil
}

// categoryRelType derives the category-edge relationship type from the
// type name, e.g. "Person" -> "PERSON".
func categoryRelType(typeName string) string {
	return strings.ToUpper(typeName)
}
