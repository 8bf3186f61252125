package reconcile

import (
	"context"
	"time"

	"schema-engine/core/graph"
)

const opUpsertSchemaType = "upsert_schema_type"

// UpsertSchemaType creates or updates the schema type and reconciles its attributes,
// returning the schema type GUID.
//
// The type entity is written only when its properties differ from the stored ones.
// Attributes are always reconciled, in order; the first attribute failure is returned
// together with the GUID, and attributes reconciled before it stay written.
// Attributes stored but absent from schemaType.Attributes are left untouched.
func (e *Engine) UpsertSchemaType(ctx context.Context, userID string, schemaType SchemaType, externalSourceName string) (guid string, err error) {
	start := time.Now()
	defer func() { e.observe(opUpsertSchemaType, start, err) }()

	if schemaType.QualifiedName == "" {
		return "", invalidInput(opUpsertSchemaType, propQualifiedName, "qualified name is required")
	}
	if schemaType.DisplayName == "" {
		return "", invalidInput(opUpsertSchemaType, propDisplayName, "display name is required")
	}
	if err := e.authorize(ctx, opUpsertSchemaType, userID); err != nil {
		return "", err
	}

	prov, err := e.provenance(ctx, opUpsertSchemaType, externalSourceName)
	if err != nil {
		return "", err
	}

	existing, err := e.find(ctx, opUpsertSchemaType, schemaType.QualifiedName, graph.TypeSchemaType)
	if err != nil {
		return "", err
	}

	desired := schemaType.properties()
	create := func() (string, error) {
		id, err := e.store.Create(ctx, userID, graph.NewEntity{
			TypeName:      graph.TypeTabularSchemaType,
			TypeGUID:      graph.TypeGUID(graph.TypeTabularSchemaType),
			QualifiedName: schemaType.QualifiedName,
			Properties:    desired,
		}, prov)
		if err != nil {
			return "", storeError(opUpsertSchemaType, schemaType.QualifiedName, err)
		}
		return id, nil
	}

	guid, outcome, err := e.upsertEntity(ctx, opUpsertSchemaType, userID, existing, create, desired, prov)
	if err != nil {
		return "", err
	}
	e.logOutcome(KindSchemaType, outcome, schemaType.QualifiedName, guid)

	return guid, e.upsertSchemaAttributes(ctx, opUpsertSchemaType, userID, guid, schemaType.Attributes, prov)
}
