package neomodel

import (
	"context"
	"fmt"

	"github.com/dan-poling/neomodel/schema/edge"
	"github.com/dan-poling/neomodel/store"
)

// RelationshipManager mediates one declared edge of one node instance.
// It caches related nodes by remote identity; the cache is populated by
// All and Relate and invalidated only through Unrelate, never by remote
// changes made outside this manager.
//
// Managers share their node's concurrency contract: not safe for
// concurrent use.
type RelationshipManager struct {
	def     *edge.Descriptor
	origin  *Node
	related map[string]*Node
}

func newRelationshipManager(def *edge.Descriptor, origin *Node) *RelationshipManager {
	return &RelationshipManager{def: def, origin: origin}
}

// Name returns the declared edge name.
func (m *RelationshipManager) Name() string { return m.def.Name }

// Direction returns the declared traversal direction.
func (m *RelationshipManager) Direction() store.Direction { return m.def.Direction }

// All returns the nodes related through this edge. A populated cache is
// returned without a store round-trip; otherwise the store is traversed
// and the results hydrated as persisted instances of the target type.
// An empty traversal returns nil without populating the cache, so the
// next call asks the store again.
func (m *RelationshipManager) All(ctx context.Context) ([]*Node, error) {
	if !m.origin.Persisted() {
		return nil, NewNodeNotPersistedError(m.origin.Type(), "traverse")
	}
	if m.related != nil {
		out := make([]*Node, 0, len(m.related))
		for _, n := range m.related {
			out = append(out, n)
		}
		return out, nil
	}

	target, err := m.origin.schema.target(m.def)
	if err != nil {
		return nil, err
	}
	recs, err := m.origin.schema.client().RelatedNodes(ctx, m.origin.ID(), m.def.Direction, m.def.Type)
	if err != nil {
		return nil, fmt.Errorf("neomodel: edge %q: traverse: %w", m.def.Name, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	related := make(map[string]*Node, len(recs))
	out := make([]*Node, 0, len(recs))
	for _, rec := range recs {
		n, err := target.hydrate(rec)
		if err != nil {
			return nil, err
		}
		related[n.ID()] = n
		out = append(out, n)
	}
	m.related = related
	return out, nil
}

// IsRelated reports whether obj is connected to the origin through this
// edge. A cache hit answers without a store round-trip, so a
// relationship removed remotely outside this manager can still be
// reported as present until the cache is invalidated.
func (m *RelationshipManager) IsRelated(ctx context.Context, obj *Node) (bool, error) {
	if err := m.check(obj, "check"); err != nil {
		return false, err
	}
	if _, ok := m.related[obj.ID()]; ok {
		return true, nil
	}
	ok, err := m.origin.schema.client().HasRelationship(ctx, m.origin.ID(), obj.ID(), m.def.Direction, m.def.Type)
	if err != nil {
		return false, fmt.Errorf("neomodel: edge %q: is related: %w", m.def.Name, err)
	}
	return ok, nil
}

// Relate connects obj to the origin through this edge, idempotently:
// an existing relationship is reused rather than duplicated. The stored
// edge runs from origin to obj for outgoing and undirected edges and
// from obj to origin for incoming ones. The related cache gains obj.
func (m *RelationshipManager) Relate(ctx context.Context, obj *Node) error {
	if err := m.check(obj, "relate"); err != nil {
		return err
	}
	from, to := m.origin.ID(), obj.ID()
	if m.def.Direction == store.Incoming {
		from, to = to, from
	}
	if _, err := m.origin.schema.client().GetOrCreateRelationship(ctx, from, m.def.Type, to); err != nil {
		return fmt.Errorf("neomodel: edge %q: relate: %w", m.def.Name, err)
	}
	if m.related == nil {
		m.related = make(map[string]*Node)
	}
	m.related[obj.ID()] = obj
	return nil
}

// Unrelate disconnects obj from the origin through this edge. Finding
// no relationship is a no-op; finding more than one fails with
// MultipleRelationshipsError and removes nothing. The related cache
// drops obj either way.
func (m *RelationshipManager) Unrelate(ctx context.Context, obj *Node) error {
	if err := m.check(obj, "unrelate"); err != nil {
		return err
	}
	delete(m.related, obj.ID())

	rels, err := m.origin.schema.client().RelationshipsBetween(ctx, m.origin.ID(), obj.ID(), m.def.Direction, m.def.Type)
	if err != nil {
		return fmt.Errorf("neomodel: edge %q: unrelate: %w", m.def.Name, err)
	}
	switch len(rels) {
	case 0:
		return nil
	case 1:
		if err := m.origin.schema.client().Delete(ctx, rels[0].Ref()); err != nil {
			return fmt.Errorf("neomodel: edge %q: unrelate: %w", m.def.Name, err)
		}
		return nil
	default:
		return NewMultipleRelationshipsError(m.def.Name, len(rels))
	}
}

// check validates a manager operation's preconditions: obj must be of
// the edge's declared target type and both endpoints must be persisted.
// op names the failed operation in the error.
func (m *RelationshipManager) check(obj *Node, op string) error {
	if obj == nil {
		return fmt.Errorf("neomodel: edge %q: nil node", m.def.Name)
	}
	if obj.Type() != m.def.Target {
		return NewTypeMismatchError(m.def.Name, m.def.Target, obj.Type())
	}
	if !m.origin.Persisted() {
		return NewNodeNotPersistedError(m.origin.Type(), op)
	}
	if !obj.Persisted() {
		return NewNodeNotPersistedError(obj.Type(), op)
	}
	return nil
}
