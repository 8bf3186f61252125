// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client. Bulk sync reads SchemaType documents from a bucket
// prefix and writes JSON snapshots back, so the interface is limited to those needs.
//
// # Helpers
//
//   - EnsureBucket: creates the bucket on first use.
//   - ReadObject: downloads an object into memory.
//   - WriteObject: uploads a byte slice.
//   - ListKeys: lists object keys under a prefix, skipping folder markers.
//
// The Client interface can be mocked with core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	keys, err := storage.ListKeys(ctx, client, "schemas", "desired/")
package storage
