package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schema-engine/core/graph"

	"go.uber.org/zap"
)

const opRemoveSchemaType = "remove_schema_type"

// RemoveSchemaType deletes every attribute attached to the schema type, then the type.
//
// The delete semantic is checked before anything else. Each delete is independent: a
// failure leaves the attributes deleted so far deleted. A GUID that names no live
// entity is treated as already removed.
func (e *Engine) RemoveSchemaType(ctx context.Context, userID, schemaTypeGUID, externalSourceName string, semantic graph.DeleteSemantic) (err error) {
	start := time.Now()
	defer func() { e.observe(opRemoveSchemaType, start, err) }()

	if !e.SupportsDeleteSemantic(semantic) {
		return newError(opRemoveSchemaType, KindUnsupportedOperation, string(semantic),
			fmt.Errorf("delete semantic %q is not supported", semantic))
	}
	if err := e.authorize(ctx, opRemoveSchemaType, userID); err != nil {
		return err
	}
	if schemaTypeGUID == "" {
		return invalidInput(opRemoveSchemaType, "guid", "schema type guid is required")
	}

	prov, err := e.provenance(ctx, opRemoveSchemaType, externalSourceName)
	if err != nil {
		return err
	}

	schemaType, err := e.store.GetEntity(ctx, schemaTypeGUID)
	if errors.Is(err, graph.ErrEntityNotFound) {
		e.log.Debug("Schema type already removed", zap.String("guid", schemaTypeGUID))
		return nil
	}
	if err != nil {
		return storeError(opRemoveSchemaType, schemaTypeGUID, err)
	}
	if !graph.IsA(schemaType.TypeName, graph.TypeSchemaType) {
		return invalidInput(opRemoveSchemaType, schemaTypeGUID, fmt.Sprintf("entity is a %s, not a schema type", schemaType.TypeName))
	}

	attributeGUIDs, err := e.attributeGUIDs(ctx, schemaTypeGUID)
	if err != nil {
		return err
	}

	for guid, qualifiedName := range attributeGUIDs {
		if err := e.store.Delete(ctx, userID, guid, semantic, prov); err != nil {
			return storeError(opRemoveSchemaType, qualifiedName, err)
		}
		e.logOutcome(KindAttribute, OutcomeRemoved, qualifiedName, guid)
	}

	if err := e.store.Delete(ctx, userID, schemaTypeGUID, semantic, prov); err != nil {
		return storeError(opRemoveSchemaType, schemaTypeGUID, err)
	}
	e.logOutcome(KindSchemaType, OutcomeRemoved, schemaType.QualifiedName, schemaTypeGUID)
	return nil
}

// attributeGUIDs returns the attributes attached to the schema type, keyed by GUID.
func (e *Engine) attributeGUIDs(ctx context.Context, schemaTypeGUID string) (map[string]string, error) {
	related, err := e.store.GetRelatedEntities(ctx, schemaTypeGUID, graph.RelTypeToAttribute, graph.TypeSchemaType)
	if err != nil {
		return nil, storeError(opRemoveSchemaType, schemaTypeGUID, err)
	}
	guids := make(map[string]string, len(related))
	for _, ref := range related {
		guids[ref.GUID] = ref.QualifiedName
	}
	return guids, nil
}
