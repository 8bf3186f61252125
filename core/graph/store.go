package graph

import (
	"context"
	"errors"
)

var (
	// ErrEntityNotFound is returned when a GUID names no live entity.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrDuplicateQualifiedName is returned when a create collides with a live entity.
	ErrDuplicateQualifiedName = errors.New("qualified name already in use")
	// ErrUnsupportedSemantic is returned by Delete for semantics the backend cannot honour.
	ErrUnsupportedSemantic = errors.New("delete semantic not supported")
)

// Store is the entity graph store.
//
// Finders return a nil EntityRef and no error when nothing matches. Each method is an
// independent write; only CreateNested spans more than one record atomically.
type Store interface {
	// FindByQualifiedName returns the live entity with qualifiedName whose type is typeName or a subtype.
	FindByQualifiedName(ctx context.Context, typeName, qualifiedName string) (*EntityRef, error)
	// GetEntity returns the live entity with guid, or ErrEntityNotFound.
	GetEntity(ctx context.Context, guid string) (*EntityRef, error)
	// Create persists a new entity and returns its GUID.
	Create(ctx context.Context, userID string, entity NewEntity, prov Provenance) (string, error)
	// CreateNested persists a new entity together with a relationship from parentGUID to it.
	CreateNested(ctx context.Context, userID string, entity NewEntity, parentGUID, relationshipType string, prov Provenance) (string, error)
	// Update replaces the properties of a live entity.
	Update(ctx context.Context, userID, guid string, props Properties, prov Provenance) error
	// Delete removes an entity and its relationships. Deleting a missing entity is a no-op.
	Delete(ctx context.Context, userID, guid string, semantic DeleteSemantic, prov Provenance) error
	// GetRelatedEntities returns the entities at the far end of relationshipType from guid.
	// The starting entity must be a fromType; otherwise the result is empty.
	GetRelatedEntities(ctx context.Context, guid, relationshipType, fromType string) ([]EntityRef, error)
	// CreateRelationship links end1 to end2 and returns the relationship GUID.
	// An identical live relationship is returned instead of creating a second one.
	CreateRelationship(ctx context.Context, userID, relationshipType, end1GUID, end2GUID string, prov Provenance) (string, error)
	// DiffProperties reports whether desired differs from existing.
	DiffProperties(existing, desired Properties) bool
}
