// Package middleware provides the HTTP middleware the API server mounts:
// request IDs, panic recovery, request logging, CORS, and bearer-token
// authentication.
package middleware
