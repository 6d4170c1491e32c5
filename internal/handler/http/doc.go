// Package http implements the HTTP transport layer of the admin API.
// It provides the chi router, middleware, and route handlers for every
// dashboard resource. Authentication and request logging are handled at
// this layer before requests are forwarded to the service layer.
package http
