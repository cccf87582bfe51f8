// Package http implements the HTTP transport layer of the blog.
//
// It exposes route wiring, page handlers, and middleware. Request tracing,
// access logging, response compression, session loading, and the
// authenticated-route gate are handled in this package before requests are
// delegated to the service layer.
package http
