// Package routes maps location paths to route descriptors.
//
// A Set is built once at startup from an ordered list of Descriptors and is
// read-only afterwards. Resolve matches a path against the set: exact literal
// matches win, then parameterized patterns (segments starting with ':') are
// tried segment by segment. Each call returns a fresh Resolved value, so
// extracted parameters never leak between navigations.
package routes
