// Package loader mounts the optional HTTP features of the engine.
//
// A feature reports whether its collaborators are present through IsEnabled and
// registers its routes in Load. The Manager skips disabled features, so a server
// started without object storage still serves the schema API while bulk sync
// stays unmounted.
package loader
