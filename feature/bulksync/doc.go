// Package bulksync reconciles desired-state documents stored in the bucket.
//
// Every object under the schema prefix (engine.schema_prefix) ending in .yaml, .yml
// or .json holds one schema type, optionally with the assets it describes and the
// lineage links leaving it:
//
//	qualifiedName: schema.orders
//	displayName: Orders
//	attributes:
//	  - qualifiedName: schema.orders.id
//	    position: 0
//	assets:
//	  - qualifiedName: file.orders.csv
//	    typeName: DataFile
//	lineage:
//	  - source: schema.orders.id
//	    target: schema.invoices.order_id
//
// Documents are reconciled by a bounded worker pool. Lineage links run after every
// document has been reconciled so targets defined in other documents resolve.
// A failing document does not stop the others; failures are aggregated.
//
// # HTTP Endpoints
//
//   - POST /sync : Runs a bulk sync (supports ?dryRun=true).
//   - POST /sync/export/:qualifiedName : Writes a JSON snapshot of a schema type to the snapshot prefix.
package bulksync
