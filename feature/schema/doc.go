// Package schema exposes the reconciliation engine over HTTP.
//
// # HTTP Endpoints
//
//   - PUT /schema-types : Reconciles a schema type and its attributes (?source= names the external source).
//   - GET /schema-types/:qualifiedName : Returns a schema type with its attributes ordered by position.
//   - DELETE /schema-types/:guid : Removes a schema type and its attributes (?semantic=SOFT|PURGE).
//   - POST /lineage : Links two referenceables with a LineageMapping relationship.
//   - PUT /assets : Reconciles an asset.
//   - POST /assets/:qualifiedName/schema-type : Attaches a schema type to an asset.
//   - GET /sources, POST /sources : Lists and registers external sources.
//
// The acting user is read from the configured user header (X-User-Id by default).
// Writes on the same qualified name are serialized within the process.
package schema
