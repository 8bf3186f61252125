// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration consumed by the HTTP features: listen port, API key, the header that
// carries the acting user, and the external source applied when a request names none.
package server
