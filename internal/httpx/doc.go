// Package httpx holds the HTTP plumbing shared by all API handlers:
// error-returning handlers, a structured HTTPError type, JSON request and
// response helpers, and a graceful server runtime.
package httpx
