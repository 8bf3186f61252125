package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsA(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		ancestor string
		want     bool
	}{
		{"Self", TypeTabularColumn, TypeTabularColumn, true},
		{"TabularIsSchemaType", TypeTabularSchemaType, TypeSchemaType, true},
		{"ColumnIsAttribute", TypeTabularColumn, TypeSchemaAttribute, true},
		{"EverythingIsReferenceable", TypeDataFile, TypeReferenceable, true},
		{"AttributeIsNotSchemaType", TypeTabularColumn, TypeSchemaType, false},
		{"Unknown", "Mystery", TypeSchemaType, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsA(tt.typeName, tt.ancestor))
		})
	}
}

func TestSubtypesOf(t *testing.T) {
	assert.Equal(t,
		[]string{TypeComplexSchemaType, TypeSchemaType, TypeTabularSchemaType},
		SubtypesOf(TypeSchemaType))
	assert.Equal(t, []string{"Unregistered"}, SubtypesOf("Unregistered"))
}

func TestRegisterType(t *testing.T) {
	assert.NoError(t, RegisterType("EventField", TypeSchemaAttribute))
	assert.NoError(t, RegisterType("EventField", TypeSchemaAttribute), "re-registering is a no-op")
	assert.True(t, IsA("EventField", TypeSchemaAttribute))
	assert.Contains(t, SubtypesOf(TypeSchemaAttribute), "EventField")

	name, ok := TypeNameByGUID(TypeGUID("EventField"))
	assert.True(t, ok)
	assert.Equal(t, "EventField", name)

	assert.Error(t, RegisterType("EventField", TypeSchemaType))
	assert.Error(t, RegisterType("Orphan", "NoSuchType"))
	assert.Error(t, RegisterType("", TypeReferenceable))
}

func TestTypeGUID_Deterministic(t *testing.T) {
	assert.Equal(t, TypeGUID(TypeTabularColumn), TypeGUID(TypeTabularColumn))
	assert.NotEqual(t, TypeGUID(TypeTabularColumn), TypeGUID(TypeTabularSchemaType))
}

func TestParseDeleteSemantic(t *testing.T) {
	s, ok := ParseDeleteSemantic("PURGE")
	assert.True(t, ok)
	assert.Equal(t, DeletePurge, s)

	_, ok = ParseDeleteSemantic("soft")
	assert.False(t, ok)
}
