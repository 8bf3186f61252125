package reconcile

import (
	"context"
	"fmt"
	"time"

	"schema-engine/core/graph"
)

const (
	opUpsertAsset      = "upsert_asset"
	opAttachSchemaType = "attach_schema_type"
)

// UpsertAsset creates or updates an asset, returning its GUID.
func (e *Engine) UpsertAsset(ctx context.Context, userID string, asset Asset, externalSourceName string) (guid string, err error) {
	start := time.Now()
	defer func() { e.observe(opUpsertAsset, start, err) }()

	if asset.QualifiedName == "" {
		return "", invalidInput(opUpsertAsset, propQualifiedName, "qualified name is required")
	}
	typeName, ok := asset.entityType()
	if !ok {
		return "", invalidInput(opUpsertAsset, asset.QualifiedName, fmt.Sprintf("type %q is not an asset type", asset.TypeName))
	}
	if err := e.authorize(ctx, opUpsertAsset, userID); err != nil {
		return "", err
	}

	prov, err := e.provenance(ctx, opUpsertAsset, externalSourceName)
	if err != nil {
		return "", err
	}

	existing, err := e.find(ctx, opUpsertAsset, asset.QualifiedName, graph.TypeAsset)
	if err != nil {
		return "", err
	}

	desired := asset.properties()
	create := func() (string, error) {
		id, err := e.store.Create(ctx, userID, graph.NewEntity{
			TypeName:      typeName,
			TypeGUID:      graph.TypeGUID(typeName),
			QualifiedName: asset.QualifiedName,
			Properties:    desired,
		}, prov)
		if err != nil {
			return "", storeError(opUpsertAsset, asset.QualifiedName, err)
		}
		return id, nil
	}

	guid, outcome, err := e.upsertEntity(ctx, opUpsertAsset, userID, existing, create, desired, prov)
	if err != nil {
		return "", err
	}
	e.logOutcome(KindAsset, outcome, asset.QualifiedName, guid)
	return guid, nil
}

// AttachSchemaType links an asset to the schema type describing it. Lineage endpoints
// naming the schema type then resolve to the asset. Attaching twice is a no-op.
func (e *Engine) AttachSchemaType(ctx context.Context, userID, assetQualifiedName, schemaTypeQualifiedName, externalSourceName string) (guid string, err error) {
	start := time.Now()
	defer func() { e.observe(opAttachSchemaType, start, err) }()

	if assetQualifiedName == "" {
		return "", invalidInput(opAttachSchemaType, "asset", "asset qualified name is required")
	}
	if schemaTypeQualifiedName == "" {
		return "", invalidInput(opAttachSchemaType, "schemaType", "schema type qualified name is required")
	}
	if err := e.authorize(ctx, opAttachSchemaType, userID); err != nil {
		return "", err
	}

	prov, err := e.provenance(ctx, opAttachSchemaType, externalSourceName)
	if err != nil {
		return "", err
	}

	asset, err := e.find(ctx, opAttachSchemaType, assetQualifiedName, graph.TypeAsset)
	if err != nil {
		return "", err
	}
	if asset == nil {
		return "", newError(opAttachSchemaType, KindReferenceableNotFound, assetQualifiedName, nil)
	}
	schemaType, err := e.find(ctx, opAttachSchemaType, schemaTypeQualifiedName, graph.TypeSchemaType)
	if err != nil {
		return "", err
	}
	if schemaType == nil {
		return "", newError(opAttachSchemaType, KindReferenceableNotFound, schemaTypeQualifiedName, nil)
	}

	guid, err = e.store.CreateRelationship(ctx, userID, graph.RelAssetSchemaType, asset.GUID, schemaType.GUID, prov)
	if err != nil {
		return "", storeError(opAttachSchemaType, assetQualifiedName, err)
	}
	e.logOutcome(KindAttachment, OutcomeLinked, assetQualifiedName+" -> "+schemaTypeQualifiedName, guid)
	return guid, nil
}
