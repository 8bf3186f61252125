// Package reconcile synchronizes tabular schema descriptions into the entity graph store.
//
// A caller submits the desired state of a schema type: its qualified name, descriptive
// fields and ordered attributes. The Engine resolves the type by qualified name, creates
// it when absent, and otherwise updates it only when the persisted properties differ
// from the desired ones. Attributes are reconciled the same way, each nested under the
// owning type through a TypeToAttribute relationship. Writes are idempotent: submitting
// the same description twice issues no store writes the second time.
//
// # Operations
//
//   - UpsertSchemaType: create or update a schema type and its attributes.
//   - AddLineageMapping: link two resolved endpoints with a LineageMapping relationship.
//     A TabularSchemaType endpoint is replaced by the asset it describes, if any.
//   - RemoveSchemaType: delete every attribute of a schema type, then the type itself.
//   - UpsertAsset and AttachSchemaType: maintain the assets lineage endpoints resolve to.
//   - FindSchemaType, FindSchemaAttribute, SchemaAttributes, DescribeSchemaType: reads.
//
// # Omitted attributes
//
// Attributes missing from a later submission are left in the store. They are removed only
// by RemoveSchemaType.
//
// # Concurrency
//
// The Engine keeps no state between calls and takes no locks. Two calls reconciling the
// same qualified name can race; the store rejects the duplicate create. Callers needing a
// single writer per name wrap calls in a core/keylock lock.
//
// # Errors
//
// Every failure is an *Error carrying the operation, a Kind and the offending name. Use
// errors.Is with the Err* sentinels, or KindOf, to classify it.
//
// # Usage
//
//	engine, err := reconcile.New(reconcile.Deps{
//	    Store:      graph.NewGormStore(db),
//	    Sources:    registry.New(db),
//	    Authorizer: auth.NewAllowList(cfg.Auth),
//	    Logger:     logg,
//	}, cfg.Engine)
//
//	guid, err := engine.UpsertSchemaType(ctx, "ana", schemaType, "warehouse")
package reconcile
