package checks

import (
	"context"
	"testing"

	"schema-engine/core/graph"
	"schema-engine/core/graph/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckOrphans(t *testing.T) {
	ctx := context.Background()
	store := graph.NewGormStore(setupTestDB(t))
	require.NoError(t, store.Migrate())

	column := func(qn string) graph.NewEntity {
		return graph.NewEntity{
			TypeName:      graph.TypeTabularColumn,
			TypeGUID:      graph.TypeGUID(graph.TypeTabularColumn),
			QualifiedName: qn,
			Properties:    graph.Properties{"qualifiedName": qn},
		}
	}

	parent, err := store.Create(ctx, "ana", graph.NewEntity{
		TypeName:      graph.TypeTabularSchemaType,
		TypeGUID:      graph.TypeGUID(graph.TypeTabularSchemaType),
		QualifiedName: "schema.orders",
		Properties:    graph.Properties{"qualifiedName": "schema.orders"},
	}, graph.Provenance{})
	require.NoError(t, err)
	_, err = store.CreateNested(ctx, "ana", column("schema.orders.id"), parent, graph.RelTypeToAttribute, graph.Provenance{})
	require.NoError(t, err)
	lost, err := store.Create(ctx, "ana", column("schema.lost.id"), graph.Provenance{})
	require.NoError(t, err)

	orphans, err := CheckOrphans(ctx, store)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, Orphan{GUID: lost, QualifiedName: "schema.lost.id", TypeName: graph.TypeTabularColumn}, orphans[0])

	require.NoError(t, FixOrphans(ctx, store, "ana", zap.NewNop(), orphans))

	orphans, err = CheckOrphans(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	found, err := store.FindByQualifiedName(ctx, graph.TypeSchemaAttribute, "schema.orders.id")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestFixOrphans_StopsOnError(t *testing.T) {
	store := new(mocks.Store)
	store.On("Delete", mock.Anything, "ana", "g1", graph.DeleteSoft, graph.Provenance{}).Return(assert.AnError)

	err := FixOrphans(context.Background(), store, "ana", zap.NewNop(), []Orphan{{GUID: "g1"}, {GUID: "g2"}})
	assert.ErrorIs(t, err, assert.AnError)
	store.AssertNumberOfCalls(t, "Delete", 1)
}
