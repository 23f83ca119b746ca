package edge

import (
	"errors"
	"fmt"

	"github.com/dan-poling/neomodel/store"
)

// Descriptor declares a relationship kind on a mapped type: the edge
// label in the store, the traversal direction relative to the owning
// node, and the target type name. One descriptor exists per declared
// edge name per type; descriptors are immutable once registered.
type Descriptor struct {
	Name      string          // manager name on the owning type, e.g. "friends"
	Type      string          // relationship type in the store, e.g. "FRIEND"
	Direction store.Direction // traversal direction relative to the owner
	Target    string          // target type name
	Err       error           // first builder-time violation, surfaced at registration
}

// Builder constructs a Descriptor.
type Builder struct {
	desc *Descriptor
}

// To declares an outgoing edge: the owner is the start node.
func To(name, relType, target string) *Builder {
	return newBuilder(name, relType, target, store.Outgoing)
}

// From declares an incoming edge: the owner is the end node.
func From(name, relType, target string) *Builder {
	return newBuilder(name, relType, target, store.Incoming)
}

// Both declares an edge traversed in either direction. Relate stores it
// as owner to target.
func Both(name, relType, target string) *Builder {
	return newBuilder(name, relType, target, store.Both)
}

func newBuilder(name, relType, target string, dir store.Direction) *Builder {
	b := &Builder{desc: &Descriptor{Name: name, Type: relType, Direction: dir, Target: target}}
	switch {
	case name == "":
		b.err(errors.New("edge name cannot be empty"))
	case relType == "":
		b.err(fmt.Errorf("edge %q: relationship type cannot be empty", name))
	case target == "":
		b.err(fmt.Errorf("edge %q: target type cannot be empty", name))
	}
	return b
}

// Descriptor returns the built descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}

func (b *Builder) err(err error) {
	if b.desc.Err == nil {
		b.desc.Err = err
	}
}
