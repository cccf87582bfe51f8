// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It owns startup, signal handling, and graceful shutdown: on SIGTERM, SIGINT
// or SIGQUIT in-flight requests get ShutdownTimeout to finish and workers are
// cancelled.
package server
