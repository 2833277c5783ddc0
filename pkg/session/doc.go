// Package session holds the application's single identity state and drives
// its lifecycle: startup reconciliation of a persisted credential, login,
// signup, and logout.
//
// One Manager is constructed per running application and passed by reference
// to whatever needs it. The credential (an opaque bearer token) lives in a
// single-slot Store that survives restarts; the identity is only ever present
// together with a credential, and the two are always cleared together.
package session
