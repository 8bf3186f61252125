package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var prov = Provenance{SourceID: "src-1", SourceName: "warehouse"}

func setupTestStore(t *testing.T) *GormStore {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := NewGormStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func setupMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return NewGormStore(gormDB), mock
}

func createSchemaType(t *testing.T, s *GormStore, qn string) string {
	guid, err := s.Create(context.Background(), "ana", NewEntity{
		TypeName:      TypeTabularSchemaType,
		QualifiedName: qn,
		Properties:    Properties{"qualifiedName": qn, "displayName": qn},
	}, prov)
	require.NoError(t, err)
	return guid
}

func TestGormStore_CreateAndFind(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	guid := createSchemaType(t, s, "schema.orders")

	t.Run("BySupertype", func(t *testing.T) {
		ref, err := s.FindByQualifiedName(ctx, TypeSchemaType, "schema.orders")
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, guid, ref.GUID)
		assert.Equal(t, TypeTabularSchemaType, ref.TypeName)
		assert.Equal(t, TypeGUID(TypeTabularSchemaType), ref.TypeGUID)
		assert.Equal(t, int64(1), ref.Version)
		assert.Equal(t, "ana", ref.CreatedBy)
		assert.Equal(t, "warehouse", ref.SourceName)
		assert.Equal(t, "schema.orders", ref.Properties["displayName"])
	})

	t.Run("ByReferenceable", func(t *testing.T) {
		ref, err := s.FindByQualifiedName(ctx, TypeReferenceable, "schema.orders")
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, guid, ref.GUID)
	})

	t.Run("WrongType", func(t *testing.T) {
		ref, err := s.FindByQualifiedName(ctx, TypeSchemaAttribute, "schema.orders")
		assert.NoError(t, err)
		assert.Nil(t, ref)
	})

	t.Run("Missing", func(t *testing.T) {
		ref, err := s.FindByQualifiedName(ctx, TypeSchemaType, "schema.none")
		assert.NoError(t, err)
		assert.Nil(t, ref)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := s.Create(ctx, "ana", NewEntity{TypeName: TypeTabularSchemaType, QualifiedName: "schema.orders"}, prov)
		assert.ErrorIs(t, err, ErrDuplicateQualifiedName)
	})

	t.Run("MissingTypeName", func(t *testing.T) {
		_, err := s.Create(ctx, "ana", NewEntity{QualifiedName: "x"}, prov)
		assert.Error(t, err)
	})
}

func TestGormStore_CreateNested(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	parent := createSchemaType(t, s, "schema.orders")

	id, err := s.CreateNested(ctx, "ana", NewEntity{
		TypeName:      TypeTabularColumn,
		QualifiedName: "schema.orders.id",
		Properties:    Properties{"position": 0},
	}, parent, RelTypeToAttribute, prov)
	require.NoError(t, err)

	related, err := s.GetRelatedEntities(ctx, parent, RelTypeToAttribute, TypeSchemaType)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, id, related[0].GUID)

	// Reverse direction also resolves
	owners, err := s.GetRelatedEntities(ctx, id, RelTypeToAttribute, TypeSchemaAttribute)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, parent, owners[0].GUID)

	// fromType mismatch yields nothing
	none, err := s.GetRelatedEntities(ctx, parent, RelTypeToAttribute, TypeSchemaAttribute)
	assert.NoError(t, err)
	assert.Empty(t, none)

	t.Run("MissingParentRollsBack", func(t *testing.T) {
		_, err := s.CreateNested(ctx, "ana", NewEntity{
			TypeName:      TypeTabularColumn,
			QualifiedName: "schema.ghost.id",
		}, "no-such-guid", RelTypeToAttribute, prov)
		assert.ErrorIs(t, err, ErrEntityNotFound)

		ref, err := s.FindByQualifiedName(ctx, TypeSchemaAttribute, "schema.ghost.id")
		assert.NoError(t, err)
		assert.Nil(t, ref)
	})
}

func TestGormStore_Update(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	guid := createSchemaType(t, s, "schema.orders")

	err := s.Update(ctx, "bo", guid, Properties{"qualifiedName": "schema.orders", "displayName": "Orders"}, prov)
	require.NoError(t, err)

	ref, err := s.GetEntity(ctx, guid)
	require.NoError(t, err)
	assert.Equal(t, "Orders", ref.Properties["displayName"])
	assert.Equal(t, int64(2), ref.Version)
	assert.Equal(t, "bo", ref.UpdatedBy)
	assert.Equal(t, "ana", ref.CreatedBy)

	err = s.Update(ctx, "bo", "missing", Properties{}, prov)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestGormStore_Delete(t *testing.T) {
	ctx := context.Background()

	for _, semantic := range []DeleteSemantic{DeleteSoft, DeletePurge} {
		t.Run(string(semantic), func(t *testing.T) {
			s := setupTestStore(t)
			parent := createSchemaType(t, s, "schema.orders")
			child, err := s.CreateNested(ctx, "ana", NewEntity{TypeName: TypeTabularColumn, QualifiedName: "schema.orders.id"}, parent, RelTypeToAttribute, prov)
			require.NoError(t, err)

			require.NoError(t, s.Delete(ctx, "ana", child, semantic, prov))

			ref, err := s.FindByQualifiedName(ctx, TypeSchemaAttribute, "schema.orders.id")
			assert.NoError(t, err)
			assert.Nil(t, ref)

			_, err = s.GetEntity(ctx, child)
			assert.ErrorIs(t, err, ErrEntityNotFound)

			related, err := s.GetRelatedEntities(ctx, parent, RelTypeToAttribute, TypeSchemaType)
			assert.NoError(t, err)
			assert.Empty(t, related)

			// Deleting again is a no-op
			assert.NoError(t, s.Delete(ctx, "ana", child, semantic, prov))

			// The qualified name is free again
			_, err = s.CreateNested(ctx, "ana", NewEntity{TypeName: TypeTabularColumn, QualifiedName: "schema.orders.id"}, parent, RelTypeToAttribute, prov)
			assert.NoError(t, err)
		})
	}

	t.Run("Archive", func(t *testing.T) {
		s := setupTestStore(t)
		guid := createSchemaType(t, s, "schema.orders")
		err := s.Delete(ctx, "ana", guid, DeleteArchive, prov)
		assert.ErrorIs(t, err, ErrUnsupportedSemantic)
	})
}

func TestGormStore_CreateRelationship(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	a := createSchemaType(t, s, "schema.orders")
	b := createSchemaType(t, s, "schema.customers")

	first, err := s.CreateRelationship(ctx, "ana", RelLineageMapping, a, b, prov)
	require.NoError(t, err)

	second, err := s.CreateRelationship(ctx, "ana", RelLineageMapping, a, b, prov)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical edge is reused")

	rels, err := s.Relationships(ctx, a, RelLineageMapping)
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Equal(t, a, rels[0].End1GUID)
	assert.Equal(t, b, rels[0].End2GUID)
	assert.Equal(t, "warehouse", rels[0].SourceName)

	// Reverse direction is a distinct edge
	reverse, err := s.CreateRelationship(ctx, "ana", RelLineageMapping, b, a, prov)
	require.NoError(t, err)
	assert.NotEqual(t, first, reverse)

	_, err = s.CreateRelationship(ctx, "ana", RelLineageMapping, a, "missing", prov)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestGormStore_Orphans(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	parent := createSchemaType(t, s, "schema.orders")

	_, err := s.CreateNested(ctx, "ana", NewEntity{TypeName: TypeTabularColumn, QualifiedName: "schema.orders.id"}, parent, RelTypeToAttribute, prov)
	require.NoError(t, err)
	_, err = s.Create(ctx, "ana", NewEntity{TypeName: TypeTabularColumn, QualifiedName: "schema.loose.col"}, prov)
	require.NoError(t, err)

	orphans, err := s.Orphans(ctx, TypeSchemaAttribute, RelTypeToAttribute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "schema.loose.col", orphans[0].QualifiedName)
}

func TestGormStore_DiffProperties(t *testing.T) {
	s := &GormStore{}
	assert.False(t, s.DiffProperties(Properties{"position": float64(1)}, Properties{"position": 1}))
	assert.True(t, s.DiffProperties(Properties{"position": float64(1)}, Properties{"position": 2}))
}

func TestGormStore_BackendFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("FindQueryFails", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectQuery("SELECT \\* FROM `graph_entities`").WillReturnError(errors.New("connection reset"))

		ref, err := s.FindByQualifiedName(ctx, TypeSchemaType, "schema.orders")
		assert.Nil(t, ref)
		assert.ErrorContains(t, err, "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateInsertFails", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `graph_entities`").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := s.Create(ctx, "ana", NewEntity{TypeName: TypeTabularSchemaType, QualifiedName: "schema.orders"}, prov)
		assert.ErrorContains(t, err, "disk full")
		assert.NotErrorIs(t, err, ErrDuplicateQualifiedName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RelatedQueryFails", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectQuery("SELECT \\* FROM `graph_entities`").WillReturnError(errors.New("timeout"))

		_, err := s.GetRelatedEntities(ctx, "guid-1", RelTypeToAttribute, TypeSchemaType)
		assert.ErrorContains(t, err, "timeout")
	})
}
