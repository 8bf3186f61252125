package checks

import (
	"fmt"
	"sort"

	"schema-engine/core/database"
	"schema-engine/core/graph"
	"schema-engine/core/registry"

	"gorm.io/gorm"
)

// StoreReport is the result of a store schema check.
type StoreReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// ExpectedTables lists the tables the engine writes and the columns each must have.
func ExpectedTables() map[string][]string {
	return map[string][]string{
		graph.EntityTable:       graph.EntityColumns,
		graph.RelationshipTable: graph.RelationshipColumns,
		registry.Table:          registry.Columns,
	}
}

// CheckStore verifies that every engine table exists with its columns.
// A table that cannot be inspected is reported as an error, not returned.
func CheckStore(db *gorm.DB) (*StoreReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &StoreReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	expected := ExpectedTables()
	tables := make([]string, 0, len(expected))
	for table := range expected {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, expected[table])
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tblReport := TableReport{MissingColumns: []string{}, Status: "ok"}
		if len(missing) > 0 {
			tblReport.MissingColumns = missing
			tblReport.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tblReport
	}

	return report, nil
}
