package store

import (
	"context"

	"github.com/dan-poling/neomodel/query"
)

// Direction is the traversal direction of a relationship relative to the
// node the traversal starts from.
type Direction int

const (
	// Outgoing follows relationships leaving the origin node.
	Outgoing Direction = iota
	// Incoming follows relationships arriving at the origin node.
	Incoming
	// Both follows relationships in either direction.
	Both
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Node is a store node record: its remote identity and a snapshot of its
// properties at read time.
type Node struct {
	ID         string
	Properties map[string]any
}

// Ref returns a deletable reference to the node.
func (n Node) Ref() Ref {
	return Ref{ID: n.ID, Kind: KindNode}
}

// Relationship is a store relationship record between two nodes.
type Relationship struct {
	ID      string
	StartID string
	EndID   string
	Type    string
}

// Ref returns a deletable reference to the relationship.
func (r Relationship) Ref() Ref {
	return Ref{ID: r.ID, Kind: KindRelationship}
}

// Kind discriminates the entity a Ref points at.
type Kind int

const (
	// KindNode marks a node reference.
	KindNode Kind = iota
	// KindRelationship marks a relationship reference.
	KindRelationship
)

// Ref identifies a node or relationship for bulk deletion.
type Ref struct {
	ID   string
	Kind Kind
}

// Client is the graph store driver consumed by the mapping layer.
//
// Implementations provide node-level atomicity for single operations and
// atomic conditional index inserts; multi-operation sequences are not
// transactional. All methods block until the store round-trip completes
// or ctx is done.
type Client interface {
	// CreateNode creates a node carrying props and a relationship of
	// relType from anchor to the new node, returning both records.
	CreateNode(ctx context.Context, props map[string]any, anchor Node, relType string) (Node, Relationship, error)

	// Delete removes the referenced entities. Deleting a node detaches
	// any incident relationships not named in refs.
	Delete(ctx context.Context, refs ...Ref) error

	// SetProperties overwrites all properties of the node.
	SetProperties(ctx context.Context, nodeID string, props map[string]any) error

	// GetProperties returns the node's current properties.
	GetProperties(ctx context.Context, nodeID string) (map[string]any, error)

	// GetOrCreateNode returns the node with the given label carrying
	// key = value, creating it if absent. The get-or-create is atomic
	// on the store side.
	GetOrCreateNode(ctx context.Context, label, key, value string) (Node, error)

	// GetOrCreateIndex returns the named secondary index, creating it
	// if absent. Idempotent.
	GetOrCreateIndex(ctx context.Context, name string) (Index, error)

	// RelatedNodes returns every node connected to the given node by a
	// relationship of relType in the given direction.
	RelatedNodes(ctx context.Context, nodeID string, dir Direction, relType string) ([]Node, error)

	// HasRelationship reports whether at least one relationship of
	// relType exists between the two nodes in the given direction.
	HasRelationship(ctx context.Context, fromID, toID string, dir Direction, relType string) (bool, error)

	// RelationshipsBetween returns the relationships of relType between
	// the two nodes in the given direction.
	RelationshipsBetween(ctx context.Context, fromID, toID string, dir Direction, relType string) ([]Relationship, error)

	// GetOrCreateRelationship returns the relationship of relType from
	// fromID to toID, creating it if absent. Idempotent.
	GetOrCreateRelationship(ctx context.Context, fromID, relType, toID string) (Relationship, error)

	// Relationships returns every relationship incident to the node.
	Relationships(ctx context.Context, nodeID string) ([]Relationship, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// Index is a named secondary index mapping (key, value) pairs to nodes.
type Index interface {
	// Name returns the index name.
	Name() string

	// Insert adds an entry for (key, value) pointing at the node.
	Insert(ctx context.Context, key, value, nodeID string) error

	// InsertIfAbsent adds an entry for (key, value) only if no entry
	// for that pair exists, and reports whether it was added. The
	// check-and-insert is atomic from the caller's perspective; on
	// conflict the prior entry is left untouched. This is the sole
	// enforcement point for uniqueness.
	InsertIfAbsent(ctx context.Context, key, value, nodeID string) (bool, error)

	// Remove drops every entry of this index pointing at the node.
	Remove(ctx context.Context, nodeID string) error

	// Query returns the nodes matching a conjunction of equality terms.
	Query(ctx context.Context, expr query.Expr) ([]Node, error)
}
