// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure the relational database that backs the
// entity graph store. MySQL, PostgreSQL (through the pgx based driver) and SQLite are
// supported; SQLite is mainly used in tests with an in-memory database.
//
// # Connect
//
// Connect opens the connection for the configured driver, applies pool limits and pings
// the server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the store integrity check, which verifies that
// the graph tables carry the columns the store expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "graph_entities", []string{"guid", "live_key"})
package database
