// Package keylock serializes work per key.
//
// The reconcile engine does not lock. Callers that may reconcile the same qualified
// name concurrently, such as the HTTP service and the bulk sync workers, take the
// key's lock around the call.
//
//	unlock, err := locks.LockContext(ctx, schemaType.QualifiedName)
//	if err != nil {
//	    return err
//	}
//	defer unlock()
package keylock
