package mocks

import (
	"context"

	"schema-engine/core/graph"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of graph.Store
type Store struct {
	mock.Mock
}

func (m *Store) FindByQualifiedName(ctx context.Context, typeName, qualifiedName string) (*graph.EntityRef, error) {
	args := m.Called(ctx, typeName, qualifiedName)
	if ref, ok := args.Get(0).(*graph.EntityRef); ok {
		return ref, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) GetEntity(ctx context.Context, guid string) (*graph.EntityRef, error) {
	args := m.Called(ctx, guid)
	if ref, ok := args.Get(0).(*graph.EntityRef); ok {
		return ref, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Create(ctx context.Context, userID string, entity graph.NewEntity, prov graph.Provenance) (string, error) {
	args := m.Called(ctx, userID, entity, prov)
	return args.String(0), args.Error(1)
}

func (m *Store) CreateNested(ctx context.Context, userID string, entity graph.NewEntity, parentGUID, relationshipType string, prov graph.Provenance) (string, error) {
	args := m.Called(ctx, userID, entity, parentGUID, relationshipType, prov)
	return args.String(0), args.Error(1)
}

func (m *Store) Update(ctx context.Context, userID, guid string, props graph.Properties, prov graph.Provenance) error {
	args := m.Called(ctx, userID, guid, props, prov)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, userID, guid string, semantic graph.DeleteSemantic, prov graph.Provenance) error {
	args := m.Called(ctx, userID, guid, semantic, prov)
	return args.Error(0)
}

func (m *Store) GetRelatedEntities(ctx context.Context, guid, relationshipType, fromType string) ([]graph.EntityRef, error) {
	args := m.Called(ctx, guid, relationshipType, fromType)
	if refs, ok := args.Get(0).([]graph.EntityRef); ok {
		return refs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) CreateRelationship(ctx context.Context, userID, relationshipType, end1GUID, end2GUID string, prov graph.Provenance) (string, error) {
	args := m.Called(ctx, userID, relationshipType, end1GUID, end2GUID, prov)
	return args.String(0), args.Error(1)
}

// DiffProperties uses the real comparison unless an expectation is set.
func (m *Store) DiffProperties(existing, desired graph.Properties) bool {
	for _, c := range m.ExpectedCalls {
		if c.Method == "DiffProperties" {
			return m.Called(existing, desired).Bool(0)
		}
	}
	return graph.HasDifference(existing, desired)
}
