package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one client command and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}
