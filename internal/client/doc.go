// Package client implements the admin dashboard client runtime.
//
// It wires the token store, the HTTP API adapter, the session manager, and
// the real-time event client into a single command-driven process lifecycle.
package client
