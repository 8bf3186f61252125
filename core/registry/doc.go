// Package registry records the external sources that produce metadata.
//
// Every write to the entity graph store is tagged with the external source it came from.
// A source has to be registered before it can tag writes; resolving an unregistered name
// fails, which aborts the reconciliation call that asked for it. Concurrent resolutions
// of the same name share one query through singleflight.
package registry
