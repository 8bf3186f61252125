package checks

import (
	"fmt"
	"strings"
	"testing"

	"schema-engine/core/graph"
	"schema-engine/core/registry"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestCheckStore_NilDB(t *testing.T) {
	report, err := CheckStore(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckStore_Migrated(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, graph.NewGormStore(db).Migrate())
	require.NoError(t, registry.New(db).Migrate())

	report, err := CheckStore(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "sqlite", report.Driver)
	assert.Len(t, report.Tables, 3)
	for table, tbl := range report.Tables {
		assert.Equal(t, "ok", tbl.Status, table)
	}
}

func TestCheckStore_MissingTables(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, registry.New(db).Migrate())

	report, err := CheckStore(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "ok", report.Tables[registry.Table].Status)
	assert.Equal(t, "error", report.Tables[graph.EntityTable].Status)
	assert.Equal(t, graph.EntityColumns, report.Tables[graph.EntityTable].MissingColumns)
}

func TestCheckStore_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.MatchExpectationsInOrder(false)

	columns := func(names []string) *sqlmock.Rows {
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, name := range names {
			rows.AddRow(name, "varchar(255)", "YES", "", nil, "")
		}
		return rows
	}

	mock.ExpectQuery("SHOW COLUMNS FROM `graph_entities`").WillReturnRows(columns(graph.EntityColumns[:3]))
	mock.ExpectQuery("SHOW COLUMNS FROM `graph_relationships`").WillReturnRows(columns(graph.RelationshipColumns))
	mock.ExpectQuery("SHOW COLUMNS FROM `external_sources`").WillReturnError(assert.AnError)

	report, err := CheckStore(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "ok", report.Tables[graph.RelationshipTable].Status)
	assert.Contains(t, report.Tables[graph.EntityTable].MissingColumns, "qualified_name")
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "external_sources")
	assert.NoError(t, mock.ExpectationsWereMet())
}
