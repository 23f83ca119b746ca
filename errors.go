package neomodel

import (
	"errors"
	"fmt"

	"github.com/dan-poling/neomodel/schema/property"
)

// Standard sentinel errors for common operations.
var (
	// ErrNoSuchProperty is returned when an undeclared property is
	// referenced in construction, assignment or a query.
	ErrNoSuchProperty = errors.New("neomodel: no such property")

	// ErrPropertyNotIndexed is returned when a query constrains a
	// property that is not indexed.
	ErrPropertyNotIndexed = errors.New("neomodel: property not indexed")

	// ErrNotUnique is returned when a uniquely indexed value conflicts
	// with an existing index entry.
	ErrNotUnique = errors.New("neomodel: value not unique")

	// ErrNodeNotPersisted is returned when an operation requiring a
	// remote identity is attempted on a transient or deleted node.
	ErrNodeNotPersisted = errors.New("neomodel: node not persisted")

	// ErrTypeMismatch is returned when a relationship target is of the
	// wrong mapped type.
	ErrTypeMismatch = errors.New("neomodel: type mismatch")

	// ErrMultipleRelationships is returned when an unrelate finds more
	// than one matching relationship.
	ErrMultipleRelationships = errors.New("neomodel: multiple relationships")

	// ErrNotFound is returned when a get-by-query matches no node.
	ErrNotFound = errors.New("neomodel: node not found")

	// ErrNotSingular is returned when a get-by-query matches more than
	// one node.
	ErrNotSingular = errors.New("neomodel: node not singular")
)

// InvalidTypeError reports a property value whose runtime type does not
// match its descriptor's declared kind. It is produced by descriptor
// validation in schema/property and re-exported here as part of the
// error taxonomy.
type InvalidTypeError = property.TypeError

// IsInvalidType returns true if the error is an InvalidTypeError.
func IsInvalidType(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidTypeError
	return errors.As(err, &e)
}

// NoSuchPropertyError reports a reference to a property the type does
// not declare.
type NoSuchPropertyError struct {
	label    string
	property string
}

// Error returns the error string.
func (e *NoSuchPropertyError) Error() string {
	return fmt.Sprintf("neomodel: %s has no property %q", e.label, e.property)
}

// Is reports whether the target error matches NoSuchPropertyError.
func (e *NoSuchPropertyError) Is(err error) bool {
	return err == ErrNoSuchProperty
}

// Label returns the mapped type name.
func (e *NoSuchPropertyError) Label() string { return e.label }

// Property returns the undeclared property name.
func (e *NoSuchPropertyError) Property() string { return e.property }

// NewNoSuchPropertyError returns a new NoSuchPropertyError.
func NewNoSuchPropertyError(label, prop string) *NoSuchPropertyError {
	return &NoSuchPropertyError{label: label, property: prop}
}

// IsNoSuchProperty returns true if the error is a NoSuchPropertyError.
func IsNoSuchProperty(err error) bool {
	if err == nil {
		return false
	}
	var e *NoSuchPropertyError
	return errors.As(err, &e) || errors.Is(err, ErrNoSuchProperty)
}

// PropertyNotIndexedError reports a query constraint over a property
// that is declared but not indexed.
type PropertyNotIndexedError struct {
	label    string
	property string
}

// Error returns the error string.
func (e *PropertyNotIndexedError) Error() string {
	return fmt.Sprintf("neomodel: %s property %q is not indexed", e.label, e.property)
}

// Is reports whether the target error matches PropertyNotIndexedError.
func (e *PropertyNotIndexedError) Is(err error) bool {
	return err == ErrPropertyNotIndexed
}

// Label returns the mapped type name.
func (e *PropertyNotIndexedError) Label() string { return e.label }

// Property returns the non-indexed property name.
func (e *PropertyNotIndexedError) Property() string { return e.property }

// NewPropertyNotIndexedError returns a new PropertyNotIndexedError.
func NewPropertyNotIndexedError(label, prop string) *PropertyNotIndexedError {
	return &PropertyNotIndexedError{label: label, property: prop}
}

// IsPropertyNotIndexed returns true if the error is a PropertyNotIndexedError.
func IsPropertyNotIndexed(err error) bool {
	if err == nil {
		return false
	}
	var e *PropertyNotIndexedError
	return errors.As(err, &e) || errors.Is(err, ErrPropertyNotIndexed)
}

// NotUniqueError reports a uniquely indexed value that conflicts with an
// existing index entry, naming the offending property and value.
type NotUniqueError struct {
	label    string
	property string
	value    string
}

// Error returns the error string.
func (e *NotUniqueError) Error() string {
	return fmt.Sprintf("neomodel: %s property %q value %q is not unique", e.label, e.property, e.value)
}

// Is reports whether the target error matches NotUniqueError.
func (e *NotUniqueError) Is(err error) bool {
	return err == ErrNotUnique
}

// Label returns the mapped type name.
func (e *NotUniqueError) Label() string { return e.label }

// Property returns the conflicting property name.
func (e *NotUniqueError) Property() string { return e.property }

// Value returns the conflicting value in its index encoding.
func (e *NotUniqueError) Value() string { return e.value }

// NewNotUniqueError returns a new NotUniqueError.
func NewNotUniqueError(label, prop, value string) *NotUniqueError {
	return &NotUniqueError{label: label, property: prop, value: value}
}

// IsNotUnique returns true if the error is a NotUniqueError.
func IsNotUnique(err error) bool {
	if err == nil {
		return false
	}
	var e *NotUniqueError
	return errors.As(err, &e) || errors.Is(err, ErrNotUnique)
}

// NodeNotPersistedError reports an operation that requires a remote
// identity attempted on a transient or deleted node.
type NodeNotPersistedError struct {
	label string
	op    string
}

// Error returns the error string.
func (e *NodeNotPersistedError) Error() string {
	return fmt.Sprintf("neomodel: cannot %s %s: node not persisted", e.op, e.label)
}

// Is reports whether the target error matches NodeNotPersistedError.
func (e *NodeNotPersistedError) Is(err error) bool {
	return err == ErrNodeNotPersisted
}

// Label returns the mapped type name.
func (e *NodeNotPersistedError) Label() string { return e.label }

// Op returns the operation that was attempted.
func (e *NodeNotPersistedError) Op() string { return e.op }

// NewNodeNotPersistedError returns a new NodeNotPersistedError.
func NewNodeNotPersistedError(label, op string) *NodeNotPersistedError {
	return &NodeNotPersistedError{label: label, op: op}
}

// IsNodeNotPersisted returns true if the error is a NodeNotPersistedError.
func IsNodeNotPersisted(err error) bool {
	if err == nil {
		return false
	}
	var e *NodeNotPersistedError
	return errors.As(err, &e) || errors.Is(err, ErrNodeNotPersisted)
}

// TypeMismatchError reports a relationship target whose mapped type is
// not the edge's declared target type.
type TypeMismatchError struct {
	edge string
	want string
	got  string
}

// Error returns the error string.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("neomodel: edge %q expects %s, got %s", e.edge, e.want, e.got)
}

// Is reports whether the target error matches TypeMismatchError.
func (e *TypeMismatchError) Is(err error) bool {
	return err == ErrTypeMismatch
}

// Edge returns the edge name.
func (e *TypeMismatchError) Edge() string { return e.edge }

// Want returns the declared target type name.
func (e *TypeMismatchError) Want() string { return e.want }

// Got returns the offending type name.
func (e *TypeMismatchError) Got() string { return e.got }

// NewTypeMismatchError returns a new TypeMismatchError.
func NewTypeMismatchError(edge, want, got string) *TypeMismatchError {
	return &TypeMismatchError{edge: edge, want: want, got: got}
}

// IsTypeMismatch returns true if the error is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *TypeMismatchError
	return errors.As(err, &e) || errors.Is(err, ErrTypeMismatch)
}

// MultipleRelationshipsError reports an unrelate that found more than
// one matching relationship, making the removal ambiguous.
type MultipleRelationshipsError struct {
	edge  string
	count int
}

// Error returns the error string.
func (e *MultipleRelationshipsError) Error() string {
	return fmt.Sprintf("neomodel: edge %q: expected a single relationship, got %d", e.edge, e.count)
}

// Is reports whether the target error matches MultipleRelationshipsError.
func (e *MultipleRelationshipsError) Is(err error) bool {
	return err == ErrMultipleRelationships
}

// Edge returns the edge name.
func (e *MultipleRelationshipsError) Edge() string { return e.edge }

// Count returns the number of relationships found.
func (e *MultipleRelationshipsError) Count() int { return e.count }

// NewMultipleRelationshipsError returns a new MultipleRelationshipsError.
func NewMultipleRelationshipsError(edge string, count int) *MultipleRelationshipsError {
	return &MultipleRelationshipsError{edge: edge, count: count}
}

// IsMultipleRelationships returns true if the error is a MultipleRelationshipsError.
func IsMultipleRelationships(err error) bool {
	if err == nil {
		return false
	}
	var e *MultipleRelationshipsError
	return errors.As(err, &e) || errors.Is(err, ErrMultipleRelationships)
}

// NotFoundError reports a get-by-query that matched no node.
type NotFoundError struct {
	label string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("neomodel: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the mapped type name.
func (e *NotFoundError) Label() string { return e.label }

// NewNotFoundError returns a new NotFoundError.
func NewNotFoundError(label string) *NotFoundError {
	return &NotFoundError{label: label}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// NotSingularError reports a get-by-query that matched more than one
// node.
type NotSingularError struct {
	label string
	count int
}

// Error returns the error string.
func (e *NotSingularError) Error() string {
	return fmt.Sprintf("neomodel: %s not singular (got %d results, expected 1)", e.label, e.count)
}

// Is reports whether the target error matches NotSingularError.
func (e *NotSingularError) Is(err error) bool {
	return err == ErrNotSingular
}

// Label returns the mapped type name.
func (e *NotSingularError) Label() string { return e.label }

// Count returns the number of results returned.
func (e *NotSingularError) Count() int { return e.count }

// NewNotSingularError returns a new NotSingularError.
func NewNotSingularError(label string, count int) *NotSingularError {
	return &NotSingularError{label: label, count: count}
}

// IsNotSingular returns true if the error is a NotSingularError.
func IsNotSingular(err error) bool {
	if err == nil {
		return false
	}
	var e *NotSingularError
	return errors.As(err, &e) || errors.Is(err, ErrNotSingular)
}
