// Package mock provides an in-memory store.Client for tests: the full
// Client contract, including atomic conditional index inserts, without
// a running graph store.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dan-poling/neomodel/query"
	"github.com/dan-poling/neomodel/store"
)

var (
	_ store.Client = (*Client)(nil)
	_ store.Index  = (*Index)(nil)
)

// Client is an in-memory store.Client. Safe for concurrent use.
type Client struct {
	mu      sync.Mutex
	nodes   map[string]map[string]any
	rels    map[string]store.Relationship
	indexes map[string]*Index
	closed  bool

	// Call counters, for tests asserting on round-trip counts.
	CreateNodeCalls      int
	GetOrCreateNodeCalls int
	RelatedNodesCalls    int
}

// New returns an empty in-memory client.
func New() *Client {
	return &Client{
		nodes:   make(map[string]map[string]any),
		rels:    make(map[string]store.Relationship),
		indexes: make(map[string]*Index),
	}
}

// NodeCount returns the number of live nodes.
func (c *Client) NodeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nodes)
}

// RelationshipCount returns the number of live relationships.
func (c *Client) RelationshipCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rels)
}

// CreateNode creates a node carrying props and an anchor relationship.
func (c *Client) CreateNode(ctx context.Context, props map[string]any, anchor store.Node, relType string) (store.Node, store.Relationship, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CreateNodeCalls++

	if _, ok := c.nodes[anchor.ID]; !ok {
		return store.Node{}, store.Relationship{}, fmt.Errorf("mock: anchor node %q not found", anchor.ID)
	}
	id := uuid.NewString()
	c.nodes[id] = copyProps(props)
	rel := store.Relationship{ID: uuid.NewString(), StartID: anchor.ID, EndID: id, Type: relType}
	c.rels[rel.ID] = rel
	return store.Node{ID: id, Properties: copyProps(props)}, rel, nil
}

// Delete removes the referenced entities.
func (c *Client) Delete(ctx context.Context, refs ...store.Ref) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ref := range refs {
		switch ref.Kind {
		case store.KindNode:
			if _, ok := c.nodes[ref.ID]; !ok {
				return fmt.Errorf("mock: node %q not found", ref.ID)
			}
			for id, rel := range c.rels {
				if rel.StartID == ref.ID || rel.EndID == ref.ID {
					delete(c.rels, id)
				}
			}
			delete(c.nodes, ref.ID)
		case store.KindRelationship:
			if _, ok := c.rels[ref.ID]; !ok {
				return fmt.Errorf("mock: relationship %q not found", ref.ID)
			}
			delete(c.rels, ref.ID)
		}
	}
	return nil
}

// SetProperties overwrites all properties of the node.
func (c *Client) SetProperties(ctx context.Context, nodeID string, props map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.nodes[nodeID]; !ok {
		return fmt.Errorf("mock: node %q not found", nodeID)
	}
	c.nodes[nodeID] = copyProps(props)
	return nil
}

// GetProperties returns the node's current properties.
func (c *Client) GetProperties(ctx context.Context, nodeID string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	props, ok := c.nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("mock: node %q not found", nodeID)
	}
	return copyProps(props), nil
}

// GetOrCreateNode returns the node with label carrying key = value,
// creating it if absent.
func (c *Client) GetOrCreateNode(ctx context.Context, label, key, value string) (store.Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.GetOrCreateNodeCalls++

	for id, props := range c.nodes {
		if props["_label"] == label && props[key] == value {
			return store.Node{ID: id, Properties: copyProps(props)}, nil
		}
	}
	id := uuid.NewString()
	c.nodes[id] = map[string]any{"_label": label, key: value}
	return store.Node{ID: id, Properties: copyProps(c.nodes[id])}, nil
}

// GetOrCreateIndex returns the named index, creating it if absent.
func (c *Client) GetOrCreateIndex(ctx context.Context, name string) (store.Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx, ok := c.indexes[name]; ok {
		return idx, nil
	}
	idx := &Index{client: c, name: name}
	c.indexes[name] = idx
	return idx, nil
}

// RelatedNodes returns every node connected to nodeID by relType in dir.
func (c *Client) RelatedNodes(ctx context.Context, nodeID string, dir store.Direction, relType string) ([]store.Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RelatedNodesCalls++

	var out []store.Node
	seen := make(map[string]bool)
	for _, rel := range c.rels {
		if rel.Type != relType {
			continue
		}
		var other string
		switch {
		case rel.StartID == nodeID && (dir == store.Outgoing || dir == store.Both):
			other = rel.EndID
		case rel.EndID == nodeID && (dir == store.Incoming || dir == store.Both):
			other = rel.StartID
		default:
			continue
		}
		if seen[other] {
			continue
		}
		seen[other] = true
		out = append(out, store.Node{ID: other, Properties: copyProps(c.nodes[other])})
	}
	return out, nil
}

// HasRelationship reports whether a relType relationship exists between
// the two nodes in dir.
func (c *Client) HasRelationship(ctx context.Context, fromID, toID string, dir store.Direction, relType string) (bool, error) {
	rels, err := c.RelationshipsBetween(ctx, fromID, toID, dir, relType)
	if err != nil {
		return false, err
	}
	return len(rels) > 0, nil
}

// RelationshipsBetween returns the relType relationships between the two
// nodes in dir.
func (c *Client) RelationshipsBetween(ctx context.Context, fromID, toID string, dir store.Direction, relType string) ([]store.Relationship, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []store.Relationship
	for _, rel := range c.rels {
		if rel.Type != relType {
			continue
		}
		forward := rel.StartID == fromID && rel.EndID == toID
		reverse := rel.StartID == toID && rel.EndID == fromID
		switch dir {
		case store.Outgoing:
			if forward {
				out = append(out, rel)
			}
		case store.Incoming:
			if reverse {
				out = append(out, rel)
			}
		case store.Both:
			if forward || reverse {
				out = append(out, rel)
			}
		}
	}
	return out, nil
}

// GetOrCreateRelationship returns the relType relationship from fromID
// to toID, creating it if absent.
func (c *Client) GetOrCreateRelationship(ctx context.Context, fromID, relType, toID string) (store.Relationship, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.nodes[fromID]; !ok {
		return store.Relationship{}, fmt.Errorf("mock: node %q not found", fromID)
	}
	if _, ok := c.nodes[toID]; !ok {
		return store.Relationship{}, fmt.Errorf("mock: node %q not found", toID)
	}
	for _, rel := range c.rels {
		if rel.StartID == fromID && rel.EndID == toID && rel.Type == relType {
			return rel, nil
		}
	}
	rel := store.Relationship{ID: uuid.NewString(), StartID: fromID, EndID: toID, Type: relType}
	c.rels[rel.ID] = rel
	return rel, nil
}

// Relationships returns every relationship incident to the node.
func (c *Client) Relationships(ctx context.Context, nodeID string) ([]store.Relationship, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []store.Relationship
	for _, rel := range c.rels {
		if rel.StartID == nodeID || rel.EndID == nodeID {
			out = append(out, rel)
		}
	}
	return out, nil
}

// Close marks the client closed.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (c *Client) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type entry struct {
	key    string
	value  string
	nodeID string
}

// Index is an in-memory store.Index.
type Index struct {
	client  *Client
	name    string
	entries []entry
}

// Name returns the index name.
func (i *Index) Name() string { return i.name }

// Insert adds an entry for (key, value) pointing at the node.
func (i *Index) Insert(ctx context.Context, key, value, nodeID string) error {
	i.client.mu.Lock()
	defer i.client.mu.Unlock()
	i.entries = append(i.entries, entry{key: key, value: value, nodeID: nodeID})
	return nil
}

// InsertIfAbsent adds an entry for (key, value) only if none exists.
func (i *Index) InsertIfAbsent(ctx context.Context, key, value, nodeID string) (bool, error) {
	i.client.mu.Lock()
	defer i.client.mu.Unlock()
	for _, e := range i.entries {
		if e.key == key && e.value == value {
			return false, nil
		}
	}
	i.entries = append(i.entries, entry{key: key, value: value, nodeID: nodeID})
	return true, nil
}

// Remove drops every entry of this index pointing at the node.
func (i *Index) Remove(ctx context.Context, nodeID string) error {
	i.client.mu.Lock()
	defer i.client.mu.Unlock()
	kept := i.entries[:0]
	for _, e := range i.entries {
		if e.nodeID != nodeID {
			kept = append(kept, e)
		}
	}
	i.entries = kept
	return nil
}

// Query returns the nodes matching every equality term of expr.
func (i *Index) Query(ctx context.Context, expr query.Expr) ([]store.Node, error) {
	i.client.mu.Lock()
	defer i.client.mu.Unlock()

	candidates := make(map[string]bool)
	for _, e := range i.entries {
		candidates[e.nodeID] = true
	}

	var out []store.Node
	for nodeID := range candidates {
		if i.matches(nodeID, expr) {
			out = append(out, store.Node{ID: nodeID, Properties: copyProps(i.client.nodes[nodeID])})
		}
	}
	return out, nil
}

// EntryCount returns the number of live entries, for test assertions.
func (i *Index) EntryCount() int {
	i.client.mu.Lock()
	defer i.client.mu.Unlock()
	return len(i.entries)
}

func (i *Index) matches(nodeID string, expr query.Expr) bool {
	for _, term := range expr.Terms() {
		found := false
		for _, e := range i.entries {
			if e.nodeID == nodeID && e.key == term.Property && e.value == term.Value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func copyProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
