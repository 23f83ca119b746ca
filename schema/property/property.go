package property

import (
	"errors"
	"fmt"
)

// Type is the declared kind of a property value.
type Type int

const (
	// TypeInvalid is the zero Type; a descriptor never carries it.
	TypeInvalid Type = iota
	// TypeString accepts string values.
	TypeString
	// TypeInt accepts int, int32 and int64 values.
	TypeInt
	// TypeFloat accepts float32 and float64 values.
	TypeFloat
	// TypeBool accepts bool values.
	TypeBool
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Descriptor declares a typed, optionally indexed property on a mapped
// type. Descriptors are built with the package builders and become
// immutable once registered.
type Descriptor struct {
	Name   string // property name, unique within a type
	Type   Type   // declared value kind
	Unique bool   // uniquely indexed; mutually exclusive with Index and Blank
	Index  bool   // indexed without uniqueness
	Blank  bool   // empty values allowed
	Err    error  // first builder-time violation, surfaced at registration
}

// Indexed reports whether the property participates in the type's index.
func (d *Descriptor) Indexed() bool {
	return d.Unique || d.Index
}

// Validate checks that v matches the declared kind. There is no
// coercion: a mismatch returns a *TypeError.
//
// TODO: enforce Blank for empty string values once the save path defines
// what emptiness means for non-string kinds.
func (d *Descriptor) Validate(v any) error {
	ok := false
	switch d.Type {
	case TypeString:
		_, ok = v.(string)
	case TypeInt:
		switch v.(type) {
		case int, int32, int64:
			ok = true
		}
	case TypeFloat:
		switch v.(type) {
		case float32, float64:
			ok = true
		}
	case TypeBool:
		_, ok = v.(bool)
	}
	if !ok {
		return &TypeError{Property: d.Name, Want: d.Type, Value: v}
	}
	return nil
}

// TypeError reports a value whose runtime type does not match its
// property's declared kind.
type TypeError struct {
	Property string // property name
	Want     Type   // declared kind
	Value    any    // offending value
}

// Error returns the error string.
func (e *TypeError) Error() string {
	return fmt.Sprintf("neomodel: property %q: expected %s, got %T", e.Property, e.Want, e.Value)
}

// Builder constructs a Descriptor. All property kinds share one builder;
// declaration conflicts are recorded on the descriptor and surfaced when
// the type is registered.
type Builder struct {
	desc *Descriptor
}

// String returns a builder for a string property.
func String(name string) *Builder {
	return newBuilder(name, TypeString)
}

// Int returns a builder for an integer property.
func Int(name string) *Builder {
	return newBuilder(name, TypeInt)
}

// Float returns a builder for a float property.
func Float(name string) *Builder {
	return newBuilder(name, TypeFloat)
}

// Bool returns a builder for a boolean property.
func Bool(name string) *Builder {
	return newBuilder(name, TypeBool)
}

func newBuilder(name string, t Type) *Builder {
	b := &Builder{desc: &Descriptor{Name: name, Type: t}}
	if name == "" {
		b.err(errors.New("property name cannot be empty"))
	}
	return b
}

// Unique marks the property as uniquely indexed. Mutually exclusive
// with Indexed and Blank.
func (b *Builder) Unique() *Builder {
	b.desc.Unique = true
	if b.desc.Index {
		b.err(fmt.Errorf("property %q: unique and indexed are mutually exclusive", b.desc.Name))
	}
	if b.desc.Blank {
		b.err(fmt.Errorf("property %q: uniquely indexed properties cannot be blank", b.desc.Name))
	}
	return b
}

// Indexed marks the property as indexed without uniqueness. Mutually
// exclusive with Unique.
func (b *Builder) Indexed() *Builder {
	b.desc.Index = true
	if b.desc.Unique {
		b.err(fmt.Errorf("property %q: unique and indexed are mutually exclusive", b.desc.Name))
	}
	return b
}

// Blank allows empty values for the property. Mutually exclusive with
// Unique.
func (b *Builder) Blank() *Builder {
	b.desc.Blank = true
	if b.desc.Unique {
		b.err(fmt.Errorf("property %q: uniquely indexed properties cannot be blank", b.desc.Name))
	}
	return b
}

// Descriptor returns the built descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}

// err records the first builder-time violation.
func (b *Builder) err(err error) {
	if b.desc.Err == nil {
		b.desc.Err = err
	}
}
