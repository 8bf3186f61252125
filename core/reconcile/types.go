package reconcile

import (
	"schema-engine/core/graph"
)

// SortOrder is the order of the values held by an attribute.
type SortOrder string

const (
	SortUnknown    SortOrder = "UNKNOWN"
	SortAscending  SortOrder = "ASCENDING"
	SortDescending SortOrder = "DESCENDING"
	SortUnsorted   SortOrder = "UNSORTED"
)

// Valid reports whether s is empty or a known order.
func (s SortOrder) Valid() bool {
	switch s {
	case "", SortUnknown, SortAscending, SortDescending, SortUnsorted:
		return true
	default:
		return false
	}
}

// SchemaType is the desired state of a tabular schema type.
type SchemaType struct {
	QualifiedName    string      `json:"qualifiedName" yaml:"qualifiedName"`
	DisplayName      string      `json:"displayName" yaml:"displayName"`
	Version          string      `json:"version,omitempty" yaml:"version,omitempty"`
	Author           string      `json:"author,omitempty" yaml:"author,omitempty"`
	Usage            string      `json:"usage,omitempty" yaml:"usage,omitempty"`
	EncodingStandard string      `json:"encodingStandard,omitempty" yaml:"encodingStandard,omitempty"`
	Attributes       []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Attribute is the desired state of one column of a schema type.
type Attribute struct {
	QualifiedName         string    `json:"qualifiedName" yaml:"qualifiedName"`
	DisplayName           string    `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description           string    `json:"description,omitempty" yaml:"description,omitempty"`
	Position              int       `json:"position" yaml:"position"`
	MinCardinality        int       `json:"minCardinality,omitempty" yaml:"minCardinality,omitempty"`
	MaxCardinality        int       `json:"maxCardinality,omitempty" yaml:"maxCardinality,omitempty"`
	IsDeprecated          bool      `json:"isDeprecated,omitempty" yaml:"isDeprecated,omitempty"`
	DefaultValueOverride  string    `json:"defaultValueOverride,omitempty" yaml:"defaultValueOverride,omitempty"`
	AllowsDuplicateValues bool      `json:"allowsDuplicateValues,omitempty" yaml:"allowsDuplicateValues,omitempty"`
	OrderedValues         bool      `json:"orderedValues,omitempty" yaml:"orderedValues,omitempty"`
	SortOrder             SortOrder `json:"sortOrder,omitempty" yaml:"sortOrder,omitempty"`
	MinimumLength         int       `json:"minimumLength,omitempty" yaml:"minimumLength,omitempty"`
	Length                int       `json:"length,omitempty" yaml:"length,omitempty"`
	Precision             int       `json:"precision,omitempty" yaml:"precision,omitempty"`
	IsNullable            bool      `json:"isNullable,omitempty" yaml:"isNullable,omitempty"`
	NativeClass           string    `json:"nativeClass,omitempty" yaml:"nativeClass,omitempty"`
	Aliases               []string  `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	DataType              string    `json:"dataType,omitempty" yaml:"dataType,omitempty"`

	// TypeGUID and TypeName override the stored entity type. They pick the type on
	// creation and are not compared afterwards.
	TypeGUID string `json:"typeGuid,omitempty" yaml:"typeGuid,omitempty"`
	TypeName string `json:"typeName,omitempty" yaml:"typeName,omitempty"`
}

// Asset is the desired state of an asset a schema type can be attached to.
type Asset struct {
	QualifiedName string `json:"qualifiedName" yaml:"qualifiedName"`
	DisplayName   string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Owner         string `json:"owner,omitempty" yaml:"owner,omitempty"`
	// TypeName defaults to DataSet and must be an Asset subtype.
	TypeName string `json:"typeName,omitempty" yaml:"typeName,omitempty"`
}

// Property names shared by the builders and readers.
const (
	propQualifiedName         = "qualifiedName"
	propDisplayName           = "displayName"
	propDescription           = "description"
	propVersionNumber         = "versionNumber"
	propAuthor                = "author"
	propUsage                 = "usage"
	propEncodingStandard      = "encodingStandard"
	propIsDeprecated          = "isDeprecated"
	propPosition              = "position"
	propMinCardinality        = "minCardinality"
	propMaxCardinality        = "maxCardinality"
	propDefaultValueOverride  = "defaultValueOverride"
	propAllowsDuplicateValues = "allowsDuplicateValues"
	propOrderedValues         = "orderedValues"
	propSortOrder             = "sortOrder"
	propMinimumLength         = "minimumLength"
	propLength                = "length"
	propPrecision             = "precision"
	propIsNullable            = "isNullable"
	propNativeClass           = "nativeClass"
	propAliases               = "aliases"
	propDataType              = "dataType"
	propOwner                 = "owner"
)

func putString(p graph.Properties, key, val string) {
	if val != "" {
		p[key] = val
	}
}

// properties builds the tracked property set of the schema type entity.
// Attributes are reconciled separately and are not part of it.
func (s SchemaType) properties() graph.Properties {
	p := graph.Properties{
		propQualifiedName: s.QualifiedName,
		propIsDeprecated:  false,
	}
	putString(p, propDisplayName, s.DisplayName)
	putString(p, propVersionNumber, s.Version)
	putString(p, propAuthor, s.Author)
	putString(p, propUsage, s.Usage)
	putString(p, propEncodingStandard, s.EncodingStandard)
	return p
}

// properties builds the tracked property set of the attribute entity.
func (a Attribute) properties() graph.Properties {
	p := graph.Properties{
		propQualifiedName:         a.QualifiedName,
		propPosition:              a.Position,
		propMinCardinality:        a.MinCardinality,
		propMaxCardinality:        a.MaxCardinality,
		propIsDeprecated:          a.IsDeprecated,
		propAllowsDuplicateValues: a.AllowsDuplicateValues,
		propOrderedValues:         a.OrderedValues,
		propMinimumLength:         a.MinimumLength,
		propLength:                a.Length,
		propPrecision:             a.Precision,
		propIsNullable:            a.IsNullable,
	}
	putString(p, propDisplayName, a.DisplayName)
	putString(p, propDescription, a.Description)
	putString(p, propDefaultValueOverride, a.DefaultValueOverride)
	putString(p, propSortOrder, string(a.SortOrder))
	putString(p, propNativeClass, a.NativeClass)
	putString(p, propDataType, a.DataType)
	if len(a.Aliases) > 0 {
		p[propAliases] = append([]string(nil), a.Aliases...)
	}
	return p
}

// entityType returns the storage type of the attribute, TabularColumn unless overridden.
func (a Attribute) entityType() (name, guid string, ok bool) {
	name = a.TypeName
	if name == "" && a.TypeGUID != "" {
		name, ok = graph.TypeNameByGUID(a.TypeGUID)
		if !ok {
			return "", "", false
		}
	}
	if name == "" {
		name = graph.TypeTabularColumn
	}
	if !graph.IsA(name, graph.TypeSchemaAttribute) {
		return "", "", false
	}
	guid = a.TypeGUID
	if guid == "" {
		guid = graph.TypeGUID(name)
	}
	return name, guid, true
}

func (a Asset) properties() graph.Properties {
	p := graph.Properties{propQualifiedName: a.QualifiedName}
	putString(p, propDisplayName, a.DisplayName)
	putString(p, propDescription, a.Description)
	putString(p, propOwner, a.Owner)
	return p
}

func (a Asset) entityType() (string, bool) {
	name := a.TypeName
	if name == "" {
		name = graph.TypeDataSet
	}
	return name, graph.IsA(name, graph.TypeAsset)
}
