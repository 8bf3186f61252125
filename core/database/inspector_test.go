package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_entities (guid TEXT PRIMARY KEY, qualified_name TEXT, version INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_entities")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["guid"])
	assert.Equal(t, "text", colMap["qualified_name"])
	assert.Equal(t, "integer", colMap["version"])

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE partial (guid TEXT, type_name TEXT)").Error)

	missing, err := MissingColumns(db, "partial", []string{"guid", "type_name", "qualified_name"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"qualified_name"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"guid"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"guid"}, missing)
}
