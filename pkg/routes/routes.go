package routes

import (
	"context"
	"strings"
)

// View renders the page for a resolved route. Implementations live outside
// this package; the resolver treats them as opaque handles.
type View interface {
	Render(ctx context.Context, route Resolved) error
}

// Descriptor declares a single route: a path pattern, whether it requires an
// authenticated session, and the view that renders it.
//
// Patterns are either literal paths ("/dashboard") or contain named parameter
// segments marked with a leading colon ("/forum/post/:id").
type Descriptor struct {
	View         View
	Pattern      string
	RequiresAuth bool
}

// Resolved is the outcome of matching a path against a Set.
//
// When no descriptor matches, Descriptor is nil and Params is empty; this is
// a valid not-found state, not an error. Params keys are exactly the named
// segments of the matched pattern. Every resolution produces its own Resolved
// value with its own Params map.
type Resolved struct {
	Descriptor *Descriptor
	Params     map[string]string
	Pattern    string
}

// Matched reports whether a descriptor was found for the path.
func (r Resolved) Matched() bool {
	return r.Descriptor != nil
}

// RequiresAuth reports whether the matched route requires authentication.
// Unmatched routes report false; the gate treats them separately.
func (r Resolved) RequiresAuth() bool {
	return r.Descriptor != nil && r.Descriptor.RequiresAuth
}

// Param returns the extracted value for a named segment, or "" if absent.
func (r Resolved) Param(name string) string {
	return r.Params[name]
}

// Set is an ordered, immutable collection of route descriptors.
type Set struct {
	descriptors []Descriptor
}

// NewSet builds a Set preserving declaration order. Order matters: when
// several patterns could match a path, the first declared wins.
func NewSet(descriptors ...Descriptor) *Set {
	s := &Set{descriptors: make([]Descriptor, len(descriptors))}
	copy(s.descriptors, descriptors)
	return s
}

// Descriptors returns the declared descriptors in order.
func (s *Set) Descriptors() []Descriptor {
	out := make([]Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Resolve matches a path against the set.
//
// Literal patterns are tried first, in declaration order. If none matches,
// parameterized patterns are tried: the path is split on "/" (empty segments
// from leading/trailing slashes discarded) and compared segment by segment,
// binding named segments into Params.
func (s *Set) Resolve(path string) Resolved {
	for i := range s.descriptors {
		if s.descriptors[i].Pattern == path {
			return Resolved{
				Descriptor: &s.descriptors[i],
				Pattern:    s.descriptors[i].Pattern,
				Params:     map[string]string{},
			}
		}
	}

	segments := splitPath(path)
	for i := range s.descriptors {
		d := &s.descriptors[i]
		if !strings.Contains(d.Pattern, ":") {
			continue
		}
		params, ok := matchSegments(splitPath(d.Pattern), segments)
		if !ok {
			continue
		}
		return Resolved{
			Descriptor: d,
			Pattern:    d.Pattern,
			Params:     params,
		}
	}

	return Resolved{Params: map[string]string{}}
}

func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// matchSegments compares a pattern's segments against a path's segments.
// Named segments (":id") bind the literal path value; all other segments
// must match exactly. Segment counts must be equal.
func matchSegments(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}
