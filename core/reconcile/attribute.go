package reconcile

import (
	"context"
	"fmt"

	"schema-engine/core/graph"
)

// upsertSchemaAttributes reconciles each attribute in list order under schemaTypeGUID.
// Each attribute is an independent write; the first failure stops the loop.
func (e *Engine) upsertSchemaAttributes(ctx context.Context, op, userID, schemaTypeGUID string, attributes []Attribute, prov graph.Provenance) error {
	for i, attr := range attributes {
		if attr.QualifiedName == "" {
			return invalidInput(op, fmt.Sprintf("attributes[%d].%s", i, propQualifiedName), "attribute qualified name is required")
		}
		if err := e.upsertSchemaAttribute(ctx, op, userID, schemaTypeGUID, attr, prov); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) upsertSchemaAttribute(ctx context.Context, op, userID, schemaTypeGUID string, attr Attribute, prov graph.Provenance) error {
	if !attr.SortOrder.Valid() {
		return invalidInput(op, attr.QualifiedName, fmt.Sprintf("unknown sort order %q", attr.SortOrder))
	}
	typeName, typeGUID, ok := attr.entityType()
	if !ok {
		return invalidInput(op, attr.QualifiedName, fmt.Sprintf("type %q (%s) is not a schema attribute type", attr.TypeName, attr.TypeGUID))
	}

	existing, err := e.find(ctx, op, attr.QualifiedName, graph.TypeSchemaAttribute)
	if err != nil {
		return err
	}

	desired := attr.properties()
	create := func() (string, error) {
		id, err := e.store.CreateNested(ctx, userID, graph.NewEntity{
			TypeName:      typeName,
			TypeGUID:      typeGUID,
			QualifiedName: attr.QualifiedName,
			Properties:    desired,
		}, schemaTypeGUID, graph.RelTypeToAttribute, prov)
		if err != nil {
			return "", storeError(op, attr.QualifiedName, err)
		}
		return id, nil
	}

	guid, outcome, err := e.upsertEntity(ctx, op, userID, existing, create, desired, prov)
	if err != nil {
		return err
	}
	e.logOutcome(KindAttribute, outcome, attr.QualifiedName, guid)
	return nil
}
