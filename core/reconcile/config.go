package reconcile

// Config holds reconcile engine and bulk sync settings.
type Config struct {
	// DeleteSemantics lists the semantics RemoveSchemaType accepts.
	DeleteSemantics []string `mapstructure:"delete_semantics" default:"SOFT,PURGE"`
	// SchemaPrefix is the bucket prefix holding desired-state schema documents.
	SchemaPrefix string `mapstructure:"schema_prefix" default:"desired/"`
	// SnapshotPrefix is the bucket prefix receiving exported snapshots.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"snapshots/"`
	// SyncWorkers bounds the number of documents reconciled concurrently.
	SyncWorkers int `mapstructure:"sync_workers" default:"4"`
}
