// Package graph is the entity graph store the reconcile engine writes to.
//
// The store persists typed entities and typed relationships between them. Entities are
// identified by a GUID and deduplicated by their qualified name, which is unique among
// live entities. Every write is tagged with the acting user and the provenance source.
//
// # Types
//
// Entity types form a single inheritance hierarchy rooted at Referenceable. Lookups by
// type match the type and all of its subtypes, so a query for SchemaType finds a
// TabularSchemaType and a query for Referenceable finds anything. New types are added
// with RegisterType.
//
// # Properties
//
// Properties is the string keyed map stored with an entity. Values round trip through
// JSON, so Differences normalizes numbers and string arrays before comparing.
//
// # Backends
//
// GormStore implements Store over MySQL, PostgreSQL or SQLite through GORM. The
// mocks package provides a testify mock for engine tests.
//
// # Usage
//
//	store := graph.NewGormStore(db)
//	if err := store.Migrate(); err != nil {
//	    return err
//	}
//	ref, err := store.FindByQualifiedName(ctx, graph.TypeSchemaType, "schema.orders")
package graph
