package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"schema-engine/core/graph"
	"schema-engine/core/utils"
)

// FindSchemaType returns the schema type named qualifiedName, or nil.
func (e *Engine) FindSchemaType(ctx context.Context, userID, qualifiedName string) (*graph.EntityRef, error) {
	return e.findAuthorized(ctx, "find_schema_type", userID, qualifiedName, graph.TypeSchemaType)
}

// FindSchemaAttribute returns the attribute named qualifiedName, or nil.
func (e *Engine) FindSchemaAttribute(ctx context.Context, userID, qualifiedName string) (*graph.EntityRef, error) {
	return e.findAuthorized(ctx, "find_schema_attribute", userID, qualifiedName, graph.TypeSchemaAttribute)
}

// SchemaTypeByGUID returns the live schema type with the given GUID, or nil.
func (e *Engine) SchemaTypeByGUID(ctx context.Context, userID, guid string) (*graph.EntityRef, error) {
	const op = "schema_type_by_guid"
	if guid == "" {
		return nil, invalidInput(op, "guid", "schema type guid is required")
	}
	if err := e.authorize(ctx, op, userID); err != nil {
		return nil, err
	}

	ref, err := e.store.GetEntity(ctx, guid)
	if errors.Is(err, graph.ErrEntityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(op, guid, err)
	}
	if !graph.IsA(ref.TypeName, graph.TypeSchemaType) {
		return nil, invalidInput(op, guid, fmt.Sprintf("entity is a %s, not a schema type", ref.TypeName))
	}
	return ref, nil
}

func (e *Engine) findAuthorized(ctx context.Context, op, userID, qualifiedName, typeName string) (*graph.EntityRef, error) {
	if qualifiedName == "" {
		return nil, invalidInput(op, propQualifiedName, "qualified name is required")
	}
	if err := e.authorize(ctx, op, userID); err != nil {
		return nil, err
	}
	return e.find(ctx, op, qualifiedName, typeName)
}

// SchemaAttributes returns the attributes attached to a schema type, ordered by
// position and then qualified name.
func (e *Engine) SchemaAttributes(ctx context.Context, userID, schemaTypeGUID string) ([]graph.EntityRef, error) {
	const op = "schema_attributes"
	if schemaTypeGUID == "" {
		return nil, invalidInput(op, "guid", "schema type guid is required")
	}
	if err := e.authorize(ctx, op, userID); err != nil {
		return nil, err
	}

	attrs, err := e.store.GetRelatedEntities(ctx, schemaTypeGUID, graph.RelTypeToAttribute, graph.TypeSchemaType)
	if err != nil {
		return nil, storeError(op, schemaTypeGUID, err)
	}
	sortByPosition(attrs)
	return attrs, nil
}

func sortByPosition(attrs []graph.EntityRef) {
	sort.SliceStable(attrs, func(i, j int) bool {
		pi := utils.ToInt(attrs[i].Properties[propPosition])
		pj := utils.ToInt(attrs[j].Properties[propPosition])
		if pi != pj {
			return pi < pj
		}
		return attrs[i].QualifiedName < attrs[j].QualifiedName
	})
}

// DescribeSchemaType reads a schema type and its attributes back into a SchemaType.
// Attribute type overrides are filled from the stored entity types.
func (e *Engine) DescribeSchemaType(ctx context.Context, userID, qualifiedName string) (*SchemaType, error) {
	const op = "describe_schema_type"
	ref, err := e.findAuthorized(ctx, op, userID, qualifiedName, graph.TypeSchemaType)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, newError(op, KindReferenceableNotFound, qualifiedName, nil)
	}

	attrs, err := e.store.GetRelatedEntities(ctx, ref.GUID, graph.RelTypeToAttribute, graph.TypeSchemaType)
	if err != nil {
		return nil, storeError(op, qualifiedName, err)
	}
	sortByPosition(attrs)

	st := schemaTypeFromEntity(*ref)
	for _, a := range attrs {
		st.Attributes = append(st.Attributes, attributeFromEntity(a))
	}
	return &st, nil
}

func schemaTypeFromEntity(ref graph.EntityRef) SchemaType {
	p := ref.Properties
	return SchemaType{
		QualifiedName:    ref.QualifiedName,
		DisplayName:      utils.ToString(p[propDisplayName]),
		Version:          utils.ToString(p[propVersionNumber]),
		Author:           utils.ToString(p[propAuthor]),
		Usage:            utils.ToString(p[propUsage]),
		EncodingStandard: utils.ToString(p[propEncodingStandard]),
	}
}

func attributeFromEntity(ref graph.EntityRef) Attribute {
	p := ref.Properties
	a := Attribute{
		QualifiedName:         ref.QualifiedName,
		DisplayName:           utils.ToString(p[propDisplayName]),
		Description:           utils.ToString(p[propDescription]),
		Position:              utils.ToInt(p[propPosition]),
		MinCardinality:        utils.ToInt(p[propMinCardinality]),
		MaxCardinality:        utils.ToInt(p[propMaxCardinality]),
		IsDeprecated:          utils.ToBool(p[propIsDeprecated]),
		DefaultValueOverride:  utils.ToString(p[propDefaultValueOverride]),
		AllowsDuplicateValues: utils.ToBool(p[propAllowsDuplicateValues]),
		OrderedValues:         utils.ToBool(p[propOrderedValues]),
		SortOrder:             SortOrder(utils.ToString(p[propSortOrder])),
		MinimumLength:         utils.ToInt(p[propMinimumLength]),
		Length:                utils.ToInt(p[propLength]),
		Precision:             utils.ToInt(p[propPrecision]),
		IsNullable:            utils.ToBool(p[propIsNullable]),
		NativeClass:           utils.ToString(p[propNativeClass]),
		Aliases:               utils.ToStringSlice(p[propAliases]),
		DataType:              utils.ToString(p[propDataType]),
	}
	if ref.TypeName != graph.TypeTabularColumn {
		a.TypeName = ref.TypeName
	}
	return a
}
