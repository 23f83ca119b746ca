package neomodel_test

import (
	"context"
	"testing"

	"github.com/dan-poling/neomodel"
	"github.com/dan-poling/neomodel/schema/property"
	"github.com/dan-poling/neomodel/store/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	_, reg := setup(t)
	person, _ := registerPeople(t, reg)

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		jim, err := person.New(map[string]any{"name": "jim", "age": 3})
		require.NoError(t, err)
		assert.Equal(t, "Person", jim.Type())
		assert.False(t, jim.Persisted())
		assert.Empty(t, jim.ID())

		name, ok := jim.Get("name")
		require.True(t, ok)
		assert.Equal(t, "jim", name)
		_, ok = jim.Get("bio")
		assert.False(t, ok)
	})

	t.Run("undeclared_property", func(t *testing.T) {
		t.Parallel()
		_, err := person.New(map[string]any{"height": 180})
		assert.True(t, neomodel.IsNoSuchProperty(err))
	})

	t.Run("wrong_value_type", func(t *testing.T) {
		t.Parallel()
		_, err := person.New(map[string]any{"age": "three"})
		assert.True(t, neomodel.IsInvalidType(err))
	})
}

func TestSet(t *testing.T) {
	t.Parallel()
	_, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim"})
	require.NoError(t, err)

	require.NoError(t, jim.Set("age", 4))
	age, ok := jim.Get("age")
	require.True(t, ok)
	assert.Equal(t, 4, age)

	// A failed assignment leaves the previous value in place.
	err = jim.Set("age", "four")
	assert.True(t, neomodel.IsInvalidType(err))
	age, _ = jim.Get("age")
	assert.Equal(t, 4, age)

	err = jim.Set("height", 180)
	assert.True(t, neomodel.IsNoSuchProperty(err))
}

func TestSaveCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim", "age": 3})
	require.NoError(t, err)
	require.NoError(t, jim.Save(ctx))

	assert.True(t, jim.Persisted())
	assert.NotEmpty(t, jim.ID())

	// One category anchor, one person, linked by one category edge.
	assert.Equal(t, 2, client.NodeCount())
	assert.Equal(t, 1, client.RelationshipCount())

	// One unique entry for name, one plain entry for age.
	idx := personIndex(t, client)
	assert.Equal(t, 2, idx.EntryCount())
}

func TestSaveRollbackOnConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim", "age": 3})
	require.NoError(t, err)
	require.NoError(t, jim.Save(ctx))

	dupe, err := person.New(map[string]any{"name": "jim", "age": 5})
	require.NoError(t, err)
	err = dupe.Save(ctx)
	assert.True(t, neomodel.IsNotUnique(err))

	// The duplicate and its category edge were rolled back; the dupe is
	// transient again and can be fixed up and re-saved.
	assert.False(t, dupe.Persisted())
	assert.Equal(t, 2, client.NodeCount())
	assert.Equal(t, 1, client.RelationshipCount())

	require.NoError(t, dupe.Set("name", "jam"))
	require.NoError(t, dupe.Save(ctx))
	assert.True(t, dupe.Persisted())
	assert.Equal(t, 3, client.NodeCount())
}

func TestSaveRollbackClearsIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, reg := setup(t)

	// The plain-indexed property is declared ahead of the unique one,
	// so its entry lands before the conflicting insert fires.
	person, err := reg.Register(ctx, "Person",
		[]neomodel.Property{
			property.Int("age").Indexed(),
			property.String("name").Unique(),
		},
		nil,
	)
	require.NoError(t, err)

	jim, err := person.New(map[string]any{"name": "jim", "age": 5})
	require.NoError(t, err)
	require.NoError(t, jim.Save(ctx))

	idx := personIndex(t, client)
	before := idx.EntryCount()

	dupe, err := person.New(map[string]any{"name": "jim", "age": 5})
	require.NoError(t, err)
	err = dupe.Save(ctx)
	assert.True(t, neomodel.IsNotUnique(err))
	assert.False(t, dupe.Persisted())

	// The rolled-back node left no entries behind, so the query
	// resolves only to the surviving node.
	assert.Equal(t, before, idx.EntryCount())
	nodes, err := person.Search(ctx, map[string]any{"age": 5})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, jim.ID(), nodes[0].ID())
}

func TestSaveUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim", "age": 3})
	require.NoError(t, err)
	require.NoError(t, jim.Save(ctx))
	id := jim.ID()

	require.NoError(t, jim.Set("age", 4))
	require.NoError(t, jim.Save(ctx))

	// The identity is stable and no second node appeared.
	assert.Equal(t, id, jim.ID())
	assert.Equal(t, 2, client.NodeCount())

	props, err := client.GetProperties(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, props["age"])

	// Index entries were replaced, not accumulated.
	idx := personIndex(t, client)
	assert.Equal(t, 2, idx.EntryCount())
}

func TestSaveUpdateConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim"})
	require.NoError(t, err)
	require.NoError(t, jim.Save(ctx))

	bob, err := person.New(map[string]any{"name": "bob"})
	require.NoError(t, err)
	require.NoError(t, bob.Save(ctx))

	// Renaming bob onto jim's unique value fails without unwinding the
	// update; bob stays persisted and the caller recovers.
	require.NoError(t, bob.Set("name", "jim"))
	err = bob.Save(ctx)
	assert.True(t, neomodel.IsNotUnique(err))
	assert.True(t, bob.Persisted())

	require.NoError(t, bob.Set("name", "bob"))
	require.NoError(t, bob.Save(ctx))
}

func TestDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim"})
	require.NoError(t, err)
	require.NoError(t, jim.Save(ctx))

	require.NoError(t, jim.Delete(ctx))
	assert.False(t, jim.Persisted())

	// The node and its category edge are gone; the anchor stays.
	assert.Equal(t, 1, client.NodeCount())
	assert.Equal(t, 0, client.RelationshipCount())

	err = jim.Delete(ctx)
	assert.True(t, neomodel.IsNodeNotPersisted(err))
}

func TestDeleteFreesUniqueValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim", "age": 3})
	require.NoError(t, err)
	require.NoError(t, jim.Save(ctx))
	require.NoError(t, jim.Delete(ctx))

	// The deleted node's entries are gone, not lingering as matches.
	idx := personIndex(t, client)
	assert.Equal(t, 0, idx.EntryCount())
	nodes, err := person.Search(ctx, map[string]any{"name": "jim"})
	require.NoError(t, err)
	assert.Empty(t, nodes)

	// The unique value is free for a new node.
	again, err := person.New(map[string]any{"name": "jim"})
	require.NoError(t, err)
	require.NoError(t, again.Save(ctx))
	assert.True(t, again.Persisted())
}

func TestRefresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, reg := setup(t)
	person, _ := registerPeople(t, reg)

	jim, err := person.New(map[string]any{"name": "jim", "age": 3})
	require.NoError(t, err)

	err = jim.Refresh(ctx)
	assert.True(t, neomodel.IsNodeNotPersisted(err))

	require.NoError(t, jim.Save(ctx))
	require.NoError(t, client.SetProperties(ctx, jim.ID(), map[string]any{"name": "jim", "age": 7}))

	require.NoError(t, jim.Refresh(ctx))
	age, _ := jim.Get("age")
	assert.Equal(t, 7, age)
}

// personIndex digs the Person index out of the mock for entry-count
// assertions.
func personIndex(t *testing.T, client *mock.Client) *mock.Index {
	t.Helper()
	idx, err := client.GetOrCreateIndex(context.Background(), "Person")
	require.NoError(t, err)
	return idx.(*mock.Index)
}
