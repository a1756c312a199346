// Package http implements the HTTP transport layer of fave-tweets.
//
// It wires the chi router, the request handlers and the middleware chain.
// Tracing, access logging, request metrics, response compression and the
// cookie session are handled here before a request reaches the service
// layer, which only ever sees explicit user ids.
package http
