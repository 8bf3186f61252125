// Package middleware holds the Fiber middleware mounted in front of every feature.
//
// The rayid subpackage stamps each request with an id that request loggers carry.
// The auth subpackage checks the X-API-Key header against server.api_key; an empty
// key leaves the API open, which is how local and test setups run.
//
// Registration order matters: rayid first so rejected requests are still traceable,
// then auth after the public swagger and metrics routes.
package middleware
