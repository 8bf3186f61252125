package reconcile

import (
	"context"
	"time"

	"schema-engine/core/graph"

	"go.uber.org/zap"
)

const opAddLineageMapping = "add_lineage_mapping"

// Resolution tells how a lineage endpoint was resolved.
type Resolution int

const (
	// ResolvedDirect is an entity used as found.
	ResolvedDirect Resolution = iota + 1
	// ResolvedAsContainer is a tabular schema type with no attached asset, used as found.
	ResolvedAsContainer
	// ResolvedAsAsset is a tabular schema type replaced by the asset it describes.
	ResolvedAsAsset
)

func (r Resolution) String() string {
	switch r {
	case ResolvedDirect:
		return "direct"
	case ResolvedAsContainer:
		return "container"
	case ResolvedAsAsset:
		return "asset"
	default:
		return "unresolved"
	}
}

// Endpoint is a resolved lineage endpoint.
type Endpoint struct {
	// QualifiedName is the name that was looked up.
	QualifiedName string
	// Entity is the entity the relationship attaches to.
	Entity graph.EntityRef
	// Container is the tabular schema type that was replaced, for ResolvedAsAsset.
	Container  *graph.EntityRef
	Resolution Resolution
}

// Lineage is the result of AddLineageMapping.
type Lineage struct {
	RelationshipGUID string
	Source           Endpoint
	Target           Endpoint
}

// AddLineageMapping links source to target with a LineageMapping relationship.
//
// Both names are looked up as any Referenceable. A TabularSchemaType endpoint is
// replaced by the asset attached to it through AssetSchemaType, when there is one.
// If either endpoint is missing no relationship is written. Linking the same pair
// twice reuses the existing relationship.
func (e *Engine) AddLineageMapping(ctx context.Context, userID, sourceQualifiedName, targetQualifiedName, externalSourceName string) (lineage *Lineage, err error) {
	start := time.Now()
	defer func() { e.observe(opAddLineageMapping, start, err) }()

	if sourceQualifiedName == "" {
		return nil, invalidInput(opAddLineageMapping, "source", "source qualified name is required")
	}
	if targetQualifiedName == "" {
		return nil, invalidInput(opAddLineageMapping, "target", "target qualified name is required")
	}
	if err := e.authorize(ctx, opAddLineageMapping, userID); err != nil {
		return nil, err
	}

	prov, err := e.provenance(ctx, opAddLineageMapping, externalSourceName)
	if err != nil {
		return nil, err
	}

	source, err := e.resolveEndpoint(ctx, opAddLineageMapping, sourceQualifiedName)
	if err != nil {
		return nil, err
	}
	target, err := e.resolveEndpoint(ctx, opAddLineageMapping, targetQualifiedName)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, newError(opAddLineageMapping, KindReferenceableNotFound, sourceQualifiedName, nil)
	}
	if target == nil {
		return nil, newError(opAddLineageMapping, KindReferenceableNotFound, targetQualifiedName, nil)
	}

	relGUID, err := e.store.CreateRelationship(ctx, userID, graph.RelLineageMapping, source.Entity.GUID, target.Entity.GUID, prov)
	if err != nil {
		return nil, storeError(opAddLineageMapping, sourceQualifiedName+" -> "+targetQualifiedName, err)
	}

	e.rec.RecordEntity(KindLineage, OutcomeLinked)
	e.log.Info("Lineage mapped",
		zap.String("source", source.Entity.QualifiedName),
		zap.Stringer("sourceResolution", source.Resolution),
		zap.String("target", target.Entity.QualifiedName),
		zap.Stringer("targetResolution", target.Resolution),
		zap.String("guid", relGUID),
	)

	return &Lineage{RelationshipGUID: relGUID, Source: *source, Target: *target}, nil
}

// ResolveEndpoint applies the lineage endpoint rules to qualifiedName without writing.
// A name that does not resolve is a ReferenceableNotFound error.
func (e *Engine) ResolveEndpoint(ctx context.Context, userID, qualifiedName string) (*Endpoint, error) {
	const op = "resolve_endpoint"
	if qualifiedName == "" {
		return nil, invalidInput(op, propQualifiedName, "qualified name is required")
	}
	if err := e.authorize(ctx, op, userID); err != nil {
		return nil, err
	}

	ep, err := e.resolveEndpoint(ctx, op, qualifiedName)
	if err != nil {
		return nil, err
	}
	if ep == nil {
		return nil, newError(op, KindReferenceableNotFound, qualifiedName, nil)
	}
	return ep, nil
}

// resolveEndpoint returns nil when qualifiedName names no entity.
func (e *Engine) resolveEndpoint(ctx context.Context, op, qualifiedName string) (*Endpoint, error) {
	ref, err := e.find(ctx, op, qualifiedName, graph.TypeReferenceable)
	if err != nil || ref == nil {
		return nil, err
	}

	if ref.TypeName != graph.TypeTabularSchemaType {
		return &Endpoint{QualifiedName: qualifiedName, Entity: *ref, Resolution: ResolvedDirect}, nil
	}

	assets, err := e.store.GetRelatedEntities(ctx, ref.GUID, graph.RelAssetSchemaType, graph.TypeTabularSchemaType)
	if err != nil {
		return nil, storeError(op, qualifiedName, err)
	}
	if len(assets) == 0 {
		e.log.Debug("Container endpoint has no asset", zap.String("qualifiedName", qualifiedName))
		return &Endpoint{QualifiedName: qualifiedName, Entity: *ref, Resolution: ResolvedAsContainer}, nil
	}
	if len(assets) > 1 {
		e.log.Warn("Schema type attached to several assets, using the oldest",
			zap.String("qualifiedName", qualifiedName),
			zap.Int("assets", len(assets)),
		)
	}

	container := *ref
	return &Endpoint{
		QualifiedName: qualifiedName,
		Entity:        assets[0],
		Container:     &container,
		Resolution:    ResolvedAsAsset,
	}, nil
}
