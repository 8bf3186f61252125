// Package auth validates the identity of engine callers.
//
// The reconcile engine calls an Authorizer before touching the store. AllowList is the
// bundled implementation: it requires a user id and, when configured with users,
// accepts only those.
package auth
