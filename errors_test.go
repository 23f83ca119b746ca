package neomodel_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dan-poling/neomodel"
	"github.com/dan-poling/neomodel/schema/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		is       func(error) bool
		msg      string
	}{
		{
			name:     "no_such_property",
			err:      neomodel.NewNoSuchPropertyError("Person", "height"),
			sentinel: neomodel.ErrNoSuchProperty,
			is:       neomodel.IsNoSuchProperty,
			msg:      `neomodel: Person has no property "height"`,
		},
		{
			name:     "property_not_indexed",
			err:      neomodel.NewPropertyNotIndexedError("Person", "bio"),
			sentinel: neomodel.ErrPropertyNotIndexed,
			is:       neomodel.IsPropertyNotIndexed,
			msg:      `neomodel: Person property "bio" is not indexed`,
		},
		{
			name:     "not_unique",
			err:      neomodel.NewNotUniqueError("Person", "name", "jim"),
			sentinel: neomodel.ErrNotUnique,
			is:       neomodel.IsNotUnique,
			msg:      `neomodel: Person property "name" value "jim" is not unique`,
		},
		{
			name:     "node_not_persisted",
			err:      neomodel.NewNodeNotPersistedError("Person", "delete"),
			sentinel: neomodel.ErrNodeNotPersisted,
			is:       neomodel.IsNodeNotPersisted,
			msg:      "neomodel: cannot delete Person: node not persisted",
		},
		{
			name:     "type_mismatch",
			err:      neomodel.NewTypeMismatchError("country", "Country", "Person"),
			sentinel: neomodel.ErrTypeMismatch,
			is:       neomodel.IsTypeMismatch,
			msg:      `neomodel: edge "country" expects Country, got Person`,
		},
		{
			name:     "multiple_relationships",
			err:      neomodel.NewMultipleRelationshipsError("friends", 3),
			sentinel: neomodel.ErrMultipleRelationships,
			is:       neomodel.IsMultipleRelationships,
			msg:      `neomodel: edge "friends": expected a single relationship, got 3`,
		},
		{
			name:     "not_found",
			err:      neomodel.NewNotFoundError("Person"),
			sentinel: neomodel.ErrNotFound,
			is:       neomodel.IsNotFound,
			msg:      "neomodel: Person not found",
		},
		{
			name:     "not_singular",
			err:      neomodel.NewNotSingularError("Person", 2),
			sentinel: neomodel.ErrNotSingular,
			is:       neomodel.IsNotSingular,
			msg:      "neomodel: Person not singular (got 2 results, expected 1)",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.EqualError(t, tt.err, tt.msg)
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.True(t, tt.is(tt.err))
			assert.True(t, tt.is(fmt.Errorf("wrapped: %w", tt.err)))
			assert.False(t, tt.is(nil))
			assert.False(t, tt.is(errors.New("unrelated")))
		})
	}
}

func TestInvalidType(t *testing.T) {
	t.Parallel()

	desc := property.Int("age").Descriptor()
	err := desc.Validate("not a number")
	require.Error(t, err)
	assert.True(t, neomodel.IsInvalidType(err))
	assert.False(t, neomodel.IsInvalidType(nil))

	var te *neomodel.InvalidTypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "age", te.Property)
	assert.Equal(t, property.TypeInt, te.Want)
}

func BenchmarkIsNotUnique(b *testing.B) {
	err := fmt.Errorf("save: %w", neomodel.NewNotUniqueError("Person", "name", "jim"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !neomodel.IsNotUnique(err) {
			b.Fatal("expected match")
		}
	}
}

func TestErrorAccessors(t *testing.T) {
	t.Parallel()

	nu := neomodel.NewNotUniqueError("Person", "name", "jim")
	assert.Equal(t, "Person", nu.Label())
	assert.Equal(t, "name", nu.Property())
	assert.Equal(t, "jim", nu.Value())

	np := neomodel.NewNodeNotPersistedError("Person", "refresh")
	assert.Equal(t, "Person", np.Label())
	assert.Equal(t, "refresh", np.Op())

	tm := neomodel.NewTypeMismatchError("country", "Country", "Person")
	assert.Equal(t, "country", tm.Edge())
	assert.Equal(t, "Country", tm.Want())
	assert.Equal(t, "Person", tm.Got())

	mr := neomodel.NewMultipleRelationshipsError("friends", 2)
	assert.Equal(t, "friends", mr.Edge())
	assert.Equal(t, 2, mr.Count())

	ns := neomodel.NewNotSingularError("Person", 4)
	assert.Equal(t, "Person", ns.Label())
	assert.Equal(t, 4, ns.Count())
}
