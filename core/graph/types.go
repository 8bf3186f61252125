package graph

import "time"

// Entity type names.
const (
	TypeReferenceable     = "Referenceable"
	TypeAsset             = "Asset"
	TypeDataSet           = "DataSet"
	TypeDataFile          = "DataFile"
	TypeDatabase          = "Database"
	TypeSchemaElement     = "SchemaElement"
	TypeSchemaType        = "SchemaType"
	TypeComplexSchemaType = "ComplexSchemaType"
	TypeTabularSchemaType = "TabularSchemaType"
	TypeSchemaAttribute   = "SchemaAttribute"
	TypeTabularColumn     = "TabularColumn"
)

// Relationship type names.
const (
	// RelTypeToAttribute links a schema type (end1) to one of its attributes (end2).
	RelTypeToAttribute = "TypeToAttribute"
	// RelAssetSchemaType links an asset (end1) to the schema type describing it (end2).
	RelAssetSchemaType = "AssetSchemaType"
	// RelLineageMapping is a directed lineage edge from end1 to end2.
	RelLineageMapping = "LineageMapping"
)

// Properties is the property set persisted with an entity.
type Properties map[string]any

// Provenance tags a write with the external source that produced it.
type Provenance struct {
	SourceID   string
	SourceName string
}

// NewEntity describes an entity to create.
type NewEntity struct {
	TypeName      string
	TypeGUID      string
	QualifiedName string
	Properties    Properties
}

// EntityRef is a persisted entity as read from the store.
type EntityRef struct {
	GUID          string
	TypeName      string
	TypeGUID      string
	QualifiedName string
	Properties    Properties
	Version       int64
	CreatedBy     string
	UpdatedBy     string
	SourceName    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RelationshipRef is a persisted relationship.
type RelationshipRef struct {
	GUID       string
	TypeName   string
	End1GUID   string
	End2GUID   string
	SourceName string
	CreatedAt  time.Time
}

// DeleteSemantic governs how a removal is carried out.
type DeleteSemantic string

const (
	// DeleteSoft marks the entity deleted and frees its qualified name.
	DeleteSoft DeleteSemantic = "SOFT"
	// DeletePurge removes the entity and its relationships permanently.
	DeletePurge DeleteSemantic = "PURGE"
	// DeleteArchive keeps the entity readable as history. No backend implements it yet.
	DeleteArchive DeleteSemantic = "ARCHIVE"
)

// ParseDeleteSemantic parses a semantic name, case sensitive.
func ParseDeleteSemantic(s string) (DeleteSemantic, bool) {
	switch DeleteSemantic(s) {
	case DeleteSoft, DeletePurge, DeleteArchive:
		return DeleteSemantic(s), true
	default:
		return "", false
	}
}
