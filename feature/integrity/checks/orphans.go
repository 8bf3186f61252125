package checks

import (
	"context"
	"fmt"

	"schema-engine/core/graph"

	"go.uber.org/zap"
)

// OrphanFinder lists live entities no relationship of a type points at.
type OrphanFinder interface {
	Orphans(ctx context.Context, typeName, relationshipType string) ([]graph.EntityRef, error)
}

// Orphan is an attribute with no owning schema type.
type Orphan struct {
	GUID          string `json:"guid"`
	QualifiedName string `json:"qualifiedName"`
	TypeName      string `json:"typeName"`
}

// CheckOrphans returns the schema attributes not attached to any schema type.
func CheckOrphans(ctx context.Context, finder OrphanFinder) ([]Orphan, error) {
	refs, err := finder.Orphans(ctx, graph.TypeSchemaAttribute, graph.RelTypeToAttribute)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphaned attributes: %w", err)
	}

	orphans := make([]Orphan, 0, len(refs))
	for _, ref := range refs {
		orphans = append(orphans, Orphan{GUID: ref.GUID, QualifiedName: ref.QualifiedName, TypeName: ref.TypeName})
	}
	return orphans, nil
}

// Deleter removes entities from the graph store.
type Deleter interface {
	Delete(ctx context.Context, userID, guid string, semantic graph.DeleteSemantic, prov graph.Provenance) error
}

// FixOrphans soft-deletes the given orphans.
func FixOrphans(ctx context.Context, store Deleter, userID string, logger *zap.Logger, orphans []Orphan) error {
	for _, o := range orphans {
		if err := store.Delete(ctx, userID, o.GUID, graph.DeleteSoft, graph.Provenance{}); err != nil {
			logger.Error("Failed to delete orphan", zap.String("qualifiedName", o.QualifiedName), zap.Error(err))
			return err
		}
		logger.Info("Deleted orphaned attribute", zap.String("qualifiedName", o.QualifiedName), zap.String("guid", o.GUID))
	}
	return nil
}
