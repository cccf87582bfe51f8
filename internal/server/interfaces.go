package server

import "context"

// Server defines the common lifecycle contract for servers managed by this
// package.
type Server interface {
	// RunServer starts serving and blocks until ctx is cancelled, a stop
	// signal arrives, or a component fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}
