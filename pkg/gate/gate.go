// Package gate decides whether a navigation should be overridden based on
// session state. It is a pure rule set: given the current path, the resolved
// route, and whether the session is authenticated, it answers stay or
// redirect. Absence of a route match and absence of an identity are both
// valid inputs with defined redirect targets; the gate never fails.
package gate

import "github.com/skinovaai/skinova/pkg/routes"

// Decision is the outcome of evaluating the policy for one navigation.
type Decision int

const (
	// Stay leaves the current location resolved; the view renders.
	Stay Decision = iota
	// ToLogin redirects to the policy's login path.
	ToLogin
	// ToDashboard redirects to the policy's dashboard path.
	ToDashboard
)

func (d Decision) String() string {
	switch d {
	case ToLogin:
		return "redirect:login"
	case ToDashboard:
		return "redirect:dashboard"
	default:
		return "stay"
	}
}

// State is the session snapshot the gate evaluates against.
type State struct {
	// Initializing is true only during the startup credential reconciliation.
	// While set, the gate is inert and every decision is Stay.
	Initializing bool
	// Authenticated is true when an identity is present.
	Authenticated bool
}

// Policy holds the well-known locations the rules refer to.
type Policy struct {
	Login     string
	Signup    string
	Root      string
	Dashboard string
}

// DefaultPolicy returns the standard application policy.
func DefaultPolicy() Policy {
	return Policy{
		Login:     "/login",
		Signup:    "/signup",
		Root:      "/",
		Dashboard: "/dashboard",
	}
}

// Decide evaluates the redirect rules in order for the given path and its
// resolution:
//
//  1. Anonymous on a protected or unmatched route → ToLogin.
//  2. Authenticated on the login, signup, or root path → ToDashboard.
//  3. The root path itself → ToLogin.
//  4. Otherwise → Stay.
//
// While the session is initializing no rule fires.
func (p Policy) Decide(state State, path string, route routes.Resolved) Decision {
	if state.Initializing {
		return Stay
	}

	if !state.Authenticated && (route.RequiresAuth() || !route.Matched()) {
		if path == p.Login {
			// A misdeclared set can leave the login path unmatched; never
			// redirect login to itself.
			return Stay
		}
		return ToLogin
	}
	if state.Authenticated && (path == p.Login || path == p.Signup || path == p.Root) {
		return ToDashboard
	}
	if path == p.Root {
		return ToLogin
	}
	return Stay
}

// Target returns the redirect location for a decision, or "" for Stay.
func (p Policy) Target(d Decision) string {
	switch d {
	case ToLogin:
		return p.Login
	case ToDashboard:
		return p.Dashboard
	default:
		return ""
	}
}
